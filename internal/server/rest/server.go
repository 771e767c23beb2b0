// Package rest exposes the account service over HTTP/JSON using gin.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/userdb/internal/logging"
	"github.com/dmitrijs2005/userdb/internal/server/config"
	"github.com/dmitrijs2005/userdb/internal/server/metrics"
	"github.com/dmitrijs2005/userdb/internal/server/models"
)

// AccountService is the subset of services.AccountService used by handlers.
type AccountService interface {
	Register(ctx context.Context, username, email, password string) (*models.Account, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
	List(ctx context.Context) ([]*models.Account, error)
	Get(ctx context.Context, id int64) (*models.Account, error)
}

type HTTPServer struct {
	address         string
	shutdownTimeout time.Duration
	accounts        AccountService
	metrics         *metrics.Metrics
	logger          logging.Logger
	engine          *gin.Engine
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, as AccountService, m *metrics.Metrics) *HTTPServer {
	s := &HTTPServer{
		address:         cfg.EndpointAddrHTTP,
		shutdownTimeout: cfg.ShutdownTimeout,
		accounts:        as,
		metrics:         m,
		logger:          l.With("module", "http_server"),
	}
	s.engine = s.newEngine(cfg.CORSAllowedOrigins)
	return s
}

func (s *HTTPServer) newEngine(origins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		gin.CustomRecovery(s.recoverPanic),
		requestID(),
		s.requestLogger(),
		s.requestMetrics(),
		cors.New(corsConfig(origins)),
	)

	r.GET("/ping", s.ping)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	r.GET("/users", s.listUsers)
	r.GET("/users/:id", s.getUser)
	r.POST("/users", s.createUser)
	r.POST("/login", s.login)

	r.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, "Not Found")
	})
	r.NoMethod(func(c *gin.Context) {
		writeError(c, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, requestIDHeader)
	cfg.ExposeHeaders = []string{requestIDHeader}
	return cfg
}

// Handler returns the configured router.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on l. When ctx is done in-flight requests get
// shutdownTimeout to complete.
func (s *HTTPServer) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		done <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", l.Addr().String())

	if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-done
}
