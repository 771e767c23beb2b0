package client

import (
	"context"

	"github.com/dmitrijs2005/userdb/internal/client/models"
)

type Client interface {
	Register(ctx context.Context, username, email string, password []byte) (string, error)
	Login(ctx context.Context, username string, password []byte) (string, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	Ping(ctx context.Context) error
}
