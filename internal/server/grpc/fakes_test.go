package grpc

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/usersvc/internal/common"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"github.com/dmitrijs2005/usersvc/internal/server/services"
)

const validID = "6f1c2a8e-3b4d-4e5f-9a6b-7c8d9e0f1a2b"

type fakeAuth struct {
	// users maps tokens to the users they authenticate.
	users map[string]*models.User

	loginRes  *services.AuthResult
	loginErr  error
	loginUser string
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (*services.AuthResult, error) {
	f.loginUser = username
	return f.loginRes, f.loginErr
}

func (f *fakeAuth) VerifyToken(ctx context.Context, token string) (*services.AuthResult, error) {
	u, err := f.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	return &services.AuthResult{User: u.Profile(), Token: token + "-fresh"}, nil
}

func (f *fakeAuth) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if u, ok := f.users[token]; ok {
		return u, nil
	}
	return nil, common.NewError(common.ErrorUnauthorized, "Invalid token")
}

type fakeUsers struct {
	mu sync.Mutex

	created   models.NewUser
	requester *models.User
	page      models.Pagination
	patch     models.UserPatch

	err error
}

func (f *fakeUsers) Create(ctx context.Context, in models.NewUser) (*models.ProvisionedUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = in
	if f.err != nil {
		return nil, f.err
	}
	return &models.ProvisionedUser{
		UserProfile: models.UserProfile{ID: validID, Username: in.Username, Email: in.Email, Roles: in.Roles},
		Password:    "Tmp123",
	}, nil
}

func (f *fakeUsers) FindAll(ctx context.Context, page models.Pagination, requester *models.User) (*models.UserList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.page = page
	f.requester = requester
	if f.err != nil {
		return nil, f.err
	}
	return &models.UserList{Meta: models.ListMeta{Total: 1, Page: page.Page, LastPage: 1},
		Data: []*models.UserProfile{{ID: validID, Username: "alice"}}}, nil
}

func (f *fakeUsers) profile(id string) (*models.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.UserProfile{ID: id, Username: "alice"}, nil
}

func (f *fakeUsers) FindOne(ctx context.Context, id string) (*models.UserProfile, error) {
	return f.profile(id)
}

func (f *fakeUsers) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.UserProfile{ID: validID, Username: username, Email: email}, nil
}

func (f *fakeUsers) FindOneWithMeta(ctx context.Context, id string) (*models.UserProfile, error) {
	p, err := f.profile(id)
	if err != nil {
		return nil, err
	}
	p.CreatorOf = []models.CreatedUser{{ID: "c-1", Username: "bob"}}
	return p, nil
}

func (f *fakeUsers) FindOneWithSummary(ctx context.Context, id string) (*models.UserSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.UserSummary{ID: id, Username: "alice"}, nil
}

func (f *fakeUsers) FindSummary(ctx context.Context, ids []string) ([]models.UserSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.UserSummary, len(ids))
	for i, id := range ids {
		out[i] = models.UserSummary{ID: id}
	}
	return out, nil
}

func (f *fakeUsers) Update(ctx context.Context, id string, patch models.UserPatch) (*models.UserProfile, error) {
	f.mu.Lock()
	f.patch = patch
	f.mu.Unlock()
	return f.profile(id)
}

func (f *fakeUsers) Remove(ctx context.Context, id string) (*models.UserProfile, error) {
	return f.profile(id)
}

func (f *fakeUsers) Restore(ctx context.Context, id string) (*models.UserProfile, error) {
	return f.profile(id)
}
