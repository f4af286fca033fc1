package client

import (
	"context"

	"github.com/dmitrijs2005/usersvc/internal/server/models"
)

type Client interface {
	Close() error
	SetAccessToken(token string)
	AccessToken() string

	Ping(ctx context.Context) error
	Login(ctx context.Context, username, password string) (*models.UserProfile, error)
	Verify(ctx context.Context) (*models.UserProfile, error)

	CreateUser(ctx context.Context, in models.NewUser) (*models.ProvisionedUser, error)
	ListUsers(ctx context.Context, page, limit int) (*models.UserList, error)
	GetUser(ctx context.Context, id string) (*models.UserProfile, error)
	GetUserMeta(ctx context.Context, id string) (*models.UserProfile, error)
	FindByUsername(ctx context.Context, username string) (*models.UserProfile, error)
	FindByEmail(ctx context.Context, email string) (*models.UserProfile, error)
	GetSummary(ctx context.Context, id string) (*models.UserSummary, error)
	GetSummaries(ctx context.Context, ids []string) ([]models.UserSummary, error)
	UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.UserProfile, error)
	RemoveUser(ctx context.Context, id string) (*models.UserProfile, error)
	RestoreUser(ctx context.Context, id string) (*models.UserProfile, error)
}
