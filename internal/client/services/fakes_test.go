package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/usersvc/internal/client/client"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func getSession(t *testing.T, db *sql.DB, key string) string {
	t.Helper()
	var v string
	err := db.QueryRow(`SELECT value FROM session WHERE key = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return ""
	}
	require.NoError(t, err)
	return v
}

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	token string

	LoginUser  *models.UserProfile
	LoginToken string
	LoginErr   error

	VerifyToken string
	VerifyErr   error
	verifiedBy  string

	PingErr  error
	CloseErr error
	closed   bool

	profile *models.UserProfile
	Err     error

	lastCreate *models.NewUser
	lastMethod string
	lastArg    string
	lastIDs    []string
	lastPage   [2]int
	lastUpdate *models.UserPatch
}

func (f *fakeClient) Close() error {
	f.closed = true
	return f.CloseErr
}

func (f *fakeClient) SetAccessToken(token string) { f.token = token }
func (f *fakeClient) AccessToken() string         { return f.token }

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.UserProfile, error) {
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	f.token = f.LoginToken
	return f.LoginUser, nil
}

func (f *fakeClient) Verify(ctx context.Context) (*models.UserProfile, error) {
	f.verifiedBy = f.token
	if f.VerifyErr != nil {
		return nil, f.VerifyErr
	}
	f.token = f.VerifyToken
	return f.LoginUser, nil
}

func (f *fakeClient) record(method, arg string) (*models.UserProfile, error) {
	f.lastMethod, f.lastArg = method, arg
	if f.Err != nil {
		return nil, f.Err
	}
	return f.profile, nil
}

func (f *fakeClient) CreateUser(ctx context.Context, in models.NewUser) (*models.ProvisionedUser, error) {
	f.lastCreate = &in
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.ProvisionedUser{UserProfile: *f.profile}, nil
}

func (f *fakeClient) ListUsers(ctx context.Context, page, limit int) (*models.UserList, error) {
	f.lastPage = [2]int{page, limit}
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.UserList{Data: []*models.UserProfile{f.profile}}, nil
}

func (f *fakeClient) GetUser(ctx context.Context, id string) (*models.UserProfile, error) {
	return f.record("GetUser", id)
}

func (f *fakeClient) GetUserMeta(ctx context.Context, id string) (*models.UserProfile, error) {
	return f.record("GetUserMeta", id)
}

func (f *fakeClient) FindByUsername(ctx context.Context, username string) (*models.UserProfile, error) {
	return f.record("FindByUsername", username)
}

func (f *fakeClient) FindByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	return f.record("FindByEmail", email)
}

func (f *fakeClient) GetSummary(ctx context.Context, id string) (*models.UserSummary, error) {
	f.lastMethod, f.lastArg = "GetSummary", id
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.UserSummary{ID: id, Username: f.profile.Username}, nil
}

func (f *fakeClient) GetSummaries(ctx context.Context, ids []string) ([]models.UserSummary, error) {
	f.lastMethod, f.lastIDs = "GetSummaries", ids
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]models.UserSummary, len(ids))
	for i, id := range ids {
		out[i] = models.UserSummary{ID: id}
	}
	return out, nil
}

func (f *fakeClient) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.UserProfile, error) {
	f.lastUpdate = &patch
	return f.record("UpdateUser", id)
}

func (f *fakeClient) RemoveUser(ctx context.Context, id string) (*models.UserProfile, error) {
	return f.record("RemoveUser", id)
}

func (f *fakeClient) RestoreUser(ctx context.Context, id string) (*models.UserProfile, error) {
	return f.record("RestoreUser", id)
}

var _ client.Client = (*fakeClient)(nil)
