package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/usersvc/internal/common"
	"github.com/dmitrijs2005/usersvc/internal/dbx"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"github.com/dmitrijs2005/usersvc/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

var alphanumeric = regexp.MustCompile(`^[A-Za-z0-9]+$`)

func isAlphanumeric(s string) bool { return alphanumeric.MatchString(s) }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// memUsers is an in-memory users.Repository. Transactions are not modeled:
// every DBTX gets the same store.
type memUsers struct {
	mu    sync.Mutex
	rows  map[string]*models.User
	seq   int
	clock time.Time

	// err, when set, is returned by every method.
	err error
}

func newMemUsers() *memUsers {
	return &memUsers{rows: map[string]*models.User{}, clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memUsers) clone(u *models.User) *models.User {
	c := *u
	c.Roles = append([]models.Role(nil), u.Roles...)
	if u.CreatedBy != nil {
		if creator, ok := m.rows[*u.CreatedBy]; ok {
			s := creator.Summary()
			c.Creator = &s
		}
	}
	return &c
}

func (m *memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, r := range m.rows {
		if r.Username == u.Username || r.Email == u.Email {
			return nil, common.NewError(common.ErrorConflict, "username or email already exists")
		}
	}
	m.seq++
	u.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", m.seq)
	u.CreatedAt = m.clock.Add(time.Duration(m.seq) * time.Second)
	u.UpdatedAt = u.CreatedAt
	stored := *u
	m.rows[u.ID] = &stored
	return u, nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return m.clone(u), nil
}

func (m *memUsers) GetByIDForUpdate(ctx context.Context, id string) (*models.User, error) {
	return m.GetByID(ctx, id)
}

func (m *memUsers) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.FindByUsernameOrEmail(ctx, username, "")
}

func (m *memUsers) FindByUsernameOrEmail(_ context.Context, username, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.rows {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			return m.clone(u), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memUsers) GetSummary(_ context.Context, id string) (*models.UserSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	s := u.Summary()
	return &s, nil
}

func (m *memUsers) FindSummaries(_ context.Context, ids []string) ([]models.UserSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.UserSummary{}
	for _, id := range ids {
		if u, ok := m.rows[id]; ok {
			out = append(out, u.Summary())
		}
	}
	return out, nil
}

func (m *memUsers) FindCreatedBy(_ context.Context, creatorID string) ([]models.CreatedUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.CreatedUser{}
	for _, u := range m.sorted(true) {
		if u.CreatedBy != nil && *u.CreatedBy == creatorID {
			out = append(out, models.CreatedUser{ID: u.ID, Username: u.Username, Email: u.Email,
				CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt})
		}
	}
	return out, nil
}

func (m *memUsers) sorted(includeDeleted bool) []*models.User {
	out := make([]*models.User, 0, len(m.rows))
	for _, u := range m.rows {
		if includeDeleted || !u.IsDeleted() {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (m *memUsers) Count(_ context.Context, includeDeleted bool) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	return len(m.sorted(includeDeleted)), nil
}

func (m *memUsers) List(_ context.Context, offset, limit int, includeDeleted bool) ([]*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	all := m.sorted(includeDeleted)
	out := []*models.User{}
	for i := offset; i < len(all) && i < offset+limit; i++ {
		out = append(out, m.clone(all[i]))
	}
	return out, nil
}

func (m *memUsers) Update(_ context.Context, id string, p models.UserPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	u, ok := m.rows[id]
	if !ok {
		return common.ErrorNotFound
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Roles != nil {
		u.Roles = p.Roles
	}
	return nil
}

func (m *memUsers) SetDeletedAt(_ context.Context, id string, deletedAt *time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	u, ok := m.rows[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.DeletedAt = deletedAt
	return nil
}

// stored returns the raw stored row, including the password hash.
func (m *memUsers) stored(id string) *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[id]
}

type fakeRepoManager struct {
	u *memUsers
}

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return f.u }

var _ users.Repository = (*memUsers)(nil)

var errStore = errors.New("connection reset")
