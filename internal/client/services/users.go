package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/usersvc/internal/client/client"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
)

// UserService exposes the user lifecycle operations to the CLI.
type UserService interface {
	Create(ctx context.Context, username, email, password string, roles []string) (*models.ProvisionedUser, error)
	List(ctx context.Context, page, limit int) (*models.UserList, error)
	Get(ctx context.Context, id string) (*models.UserProfile, error)
	Meta(ctx context.Context, id string) (*models.UserProfile, error)
	// Find looks a user up by email when the key contains "@", by username otherwise.
	Find(ctx context.Context, key string) (*models.UserProfile, error)
	Summaries(ctx context.Context, ids []string) ([]models.UserSummary, error)
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.UserProfile, error)
	Remove(ctx context.Context, id string) (*models.UserProfile, error)
	Restore(ctx context.Context, id string) (*models.UserProfile, error)
}

type userService struct {
	client client.Client
}

func NewUserService(client client.Client) UserService {
	return &userService{client: client}
}

func (s *userService) Create(ctx context.Context, username, email, password string, roles []string) (*models.ProvisionedUser, error) {
	in := models.NewUser{
		Username: username,
		Email:    email,
		Password: password,
	}
	for _, r := range roles {
		in.Roles = append(in.Roles, models.Role(r))
	}
	return s.client.CreateUser(ctx, in)
}

func (s *userService) List(ctx context.Context, page, limit int) (*models.UserList, error) {
	return s.client.ListUsers(ctx, page, limit)
}

func (s *userService) Get(ctx context.Context, id string) (*models.UserProfile, error) {
	return s.client.GetUser(ctx, id)
}

func (s *userService) Meta(ctx context.Context, id string) (*models.UserProfile, error) {
	return s.client.GetUserMeta(ctx, id)
}

func (s *userService) Find(ctx context.Context, key string) (*models.UserProfile, error) {
	if strings.Contains(key, "@") {
		return s.client.FindByEmail(ctx, key)
	}
	return s.client.FindByUsername(ctx, key)
}

func (s *userService) Summaries(ctx context.Context, ids []string) ([]models.UserSummary, error) {
	if len(ids) == 1 {
		one, err := s.client.GetSummary(ctx, ids[0])
		if err != nil {
			return nil, err
		}
		return []models.UserSummary{*one}, nil
	}
	return s.client.GetSummaries(ctx, ids)
}

func (s *userService) Update(ctx context.Context, id string, patch models.UserPatch) (*models.UserProfile, error) {
	return s.client.UpdateUser(ctx, id, patch)
}

func (s *userService) Remove(ctx context.Context, id string) (*models.UserProfile, error) {
	return s.client.RemoveUser(ctx, id)
}

func (s *userService) Restore(ctx context.Context, id string) (*models.UserProfile, error) {
	return s.client.RestoreUser(ctx, id)
}
