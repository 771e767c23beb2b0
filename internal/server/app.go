// Package server initializes and runs the userdb server.
// It opens the account store, builds the service and serves the HTTP API
// until the process is signalled.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/userdb/internal/cryptox"
	"github.com/dmitrijs2005/userdb/internal/logging"
	"github.com/dmitrijs2005/userdb/internal/server/config"
	"github.com/dmitrijs2005/userdb/internal/server/metrics"
	"github.com/dmitrijs2005/userdb/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/userdb/internal/server/rest"
	"github.com/dmitrijs2005/userdb/internal/server/services"
	"github.com/dmitrijs2005/userdb/internal/server/storage"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	storage *storage.Storage
	server  *rest.HTTPServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, logOut io.Writer) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger, err := logging.New(c.LogLevel, logOut)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	hash, err := cryptox.NewHasher(c.HashAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("hasher init error: %w", err)
	}

	repomanager.SetMigrationLogger(logging.NewPrintfLogger(logger.With("module", "migrations")))

	st, err := storage.Open(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := st.Initialize(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	as := services.NewAccountService(st.DB(), st.Manager(), hash, c)
	srv := rest.NewHTTPServer(c, logger, as, metrics.New())

	return &App{config: c, logger: logger, storage: st, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes the store.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "dialect", app.storage.Manager().Dialect())

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.storage.Close(); err != nil {
		app.logger.Error(ctx, "closing storage", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
