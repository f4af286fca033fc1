package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/usersvc/internal/common"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

var userColumns = []string{"id", "username", "email", "password", "roles", "created_by",
	"created_at", "updated_at", "deleted_at", "c.id", "c.username", "c.email"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(username,\s*email,\s*password,\s*roles,\s*created_by\).*RETURNING\s+id,\s*created_at,\s*updated_at$`

	now := time.Now()
	creator := "c-1"
	mock.ExpectQuery(q).
		WithArgs("alice", "alice@example.com", "hash", "user,admin", "c-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("42", now, now))

	u := &models.User{Username: "alice", Email: "alice@example.com", Password: "hash",
		Roles: []models.Role{models.RoleUser, models.RoleAdmin}, CreatedBy: &creator}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "42" || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreate_NullCreator(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("root", "root@example.com", "hash", "admin", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("1", now, now))

	_, err := repo.Create(context.Background(), &models.User{Username: "root", Email: "root@example.com",
		Password: "hash", Roles: []models.Role{models.RoleAdmin}})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestCreate_DuplicateIsConflict(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), &models.User{Username: "alice", Email: "a@b.c", Password: "h"})
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("want ErrorConflict, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Username: "alice"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByID_FoundWithCreator(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	deleted := now.Add(time.Minute)
	rows := sqlmock.NewRows(userColumns).
		AddRow("u-1", "alice", "alice@example.com", "hash", "user", "c-1", now, now, deleted, "c-1", "root", "root@example.com")
	mock.ExpectQuery(`(?s)FROM users u\s+LEFT JOIN users c ON c.id = u.created_by\s+WHERE u.id = \$1$`).
		WithArgs("u-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != "u-1" || got.Creator == nil || got.Creator.Username != "root" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.CreatedBy == nil || *got.CreatedBy != "c-1" {
		t.Fatalf("unexpected createdBy: %v", got.CreatedBy)
	}
	if got.DeletedAt == nil || !got.DeletedAt.Equal(deleted) {
		t.Fatalf("unexpected deletedAt: %v", got.DeletedAt)
	}
	if len(got.Roles) != 1 || got.Roles[0] != models.RoleUser {
		t.Fatalf("unexpected roles: %v", got.Roles)
	}
}

func TestGetByID_BootstrapRecordHasNoCreator(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userColumns).
		AddRow("u-1", "root", "root@example.com", "hash", "admin,user", nil, now, now, nil, nil, nil, nil)
	mock.ExpectQuery(`WHERE u.id = \$1`).WithArgs("u-1").WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.CreatedBy != nil || got.Creator != nil || got.DeletedAt != nil {
		t.Fatalf("expected empty weak references, got %+v", got)
	}
	if !got.IsAdmin() {
		t.Fatalf("expected admin roles, got %v", got.Roles)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`WHERE u.id = \$1`).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByIDForUpdate_LocksRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`WHERE u.id = \$1 FOR UPDATE OF u$`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u-1", "alice", "a@x.io", "hash", "user", nil, now, now, nil, nil, nil, nil))

	if _, err := repo.GetByIDForUpdate(context.Background(), "u-1"); err != nil {
		t.Fatalf("GetByIDForUpdate error: %v", err)
	}
}

func TestGetByUsername(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`WHERE u.username = \$1$`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u-1", "alice", "a@x.io", "hash", "user", nil, now, now, nil, nil, nil, nil))

	got, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if got.Password != "hash" {
		t.Fatalf("login lookup must carry the hash, got %q", got.Password)
	}
}

func TestFindByUsernameOrEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)WHERE \(\$1 <> '' AND u.username = \$1\) OR \(\$2 <> '' AND u.email = \$2\).*LIMIT 1`).
		WithArgs("", "a@x.io").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u-1", "alice", "a@x.io", "hash", "user", nil, now, now, nil, nil, nil, nil))

	got, err := repo.FindByUsernameOrEmail(context.Background(), "", "a@x.io")
	if err != nil {
		t.Fatalf("FindByUsernameOrEmail error: %v", err)
	}
	if got.Email != "a@x.io" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestFindByUsernameOrEmail_NoKeys(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	_, err := repo.FindByUsernameOrEmail(context.Background(), "", "")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no query expected: %v", err)
	}
}

func TestGetSummary(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`^SELECT id, username, email FROM users WHERE id = \$1$`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).AddRow("u-1", "alice", "a@x.io"))

	got, err := repo.GetSummary(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("GetSummary error: %v", err)
	}
	if *got != (models.UserSummary{ID: "u-1", Username: "alice", Email: "a@x.io"}) {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestFindSummaries(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`^SELECT id, username, email FROM users WHERE id IN \(\$1, \$2\)$`).
		WithArgs("u-1", "u-2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).
			AddRow("u-1", "alice", "a@x.io").
			AddRow("u-2", "bob", "b@x.io"))

	got, err := repo.FindSummaries(context.Background(), []string{"u-1", "u-2"})
	if err != nil {
		t.Fatalf("FindSummaries error: %v", err)
	}
	if len(got) != 2 || got[1].Username != "bob" {
		t.Fatalf("unexpected summaries: %+v", got)
	}
}

func TestFindSummaries_EmptyInput(t *testing.T) {
	repo, _, db := newRepoWithMock(t)
	defer db.Close()

	got, err := repo.FindSummaries(context.Background(), nil)
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v, %v", got, err)
	}
}

func TestFindCreatedBy(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)FROM users\s+WHERE created_by = \$1\s+ORDER BY created_at DESC, id DESC`).
		WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "created_at", "updated_at"}).
			AddRow("u-2", "bob", "b@x.io", now, now))

	got, err := repo.FindCreatedBy(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("FindCreatedBy error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "u-2" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestCount_Visibility(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM users u WHERE u.deleted_at IS NULL$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM users u$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))

	active, err := repo.Count(context.Background(), false)
	if err != nil || active != 7 {
		t.Fatalf("Count(active) = %d, %v", active, err)
	}
	all, err := repo.Count(context.Background(), true)
	if err != nil || all != 9 {
		t.Fatalf("Count(all) = %d, %v", all, err)
	}
}

func TestList_OrderAndWindow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)WHERE u.deleted_at IS NULL\s+ORDER BY u.created_at DESC, u.id DESC\s+LIMIT \$1 OFFSET \$2$`).
		WithArgs(10, 10).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u-2", "bob", "b@x.io", "hash", "user", "u-1", now, now, nil, "u-1", "alice", "a@x.io").
			AddRow("u-1", "alice", "a@x.io", "hash", "admin", nil, now.Add(-time.Hour), now, nil, nil, nil, nil))

	got, err := repo.List(context.Background(), 10, 10, false)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "u-2" || got[0].Creator.ID != "u-1" {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestList_AdminSeesDeleted(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)LEFT JOIN users c ON c.id = u.created_by\s+ORDER BY`).
		WithArgs(5, 0).
		WillReturnRows(sqlmock.NewRows(userColumns))

	got, err := repo.List(context.Background(), 0, 5, true)
	if err != nil || len(got) != 0 {
		t.Fatalf("List = %v, %v", got, err)
	}
}

func TestUpdate_BuildsSetClause(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	name := "bob"
	hash := "newhash"
	mock.ExpectExec(`^UPDATE users SET username = \$2, password = \$3, roles = string_to_array\(\$4, ','\), updated_at = now\(\) WHERE id = \$1$`).
		WithArgs("u-1", "bob", "newhash", "admin").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), "u-1", models.UserPatch{Username: &name, Password: &hash, Roles: []models.Role{models.RoleAdmin}})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
}

func TestUpdate_EmptyPatchIsNoop(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	if err := repo.Update(context.Background(), "u-1", models.UserPatch{}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no statement expected: %v", err)
	}
}

func TestUpdate_NoRowsIsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	email := "x@y.z"
	mock.ExpectExec(`^UPDATE users SET email = \$2`).
		WithArgs("ghost", "x@y.z").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), "ghost", models.UserPatch{Email: &email})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestSetDeletedAt(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec(`^UPDATE users SET deleted_at = \$2, updated_at = now\(\) WHERE id = \$1$`).
		WithArgs("u-1", ts).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^UPDATE users SET deleted_at = \$2`).
		WithArgs("u-1", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetDeletedAt(context.Background(), "u-1", &ts); err != nil {
		t.Fatalf("SetDeletedAt(ts) error: %v", err)
	}
	if err := repo.SetDeletedAt(context.Background(), "u-1", nil); err != nil {
		t.Fatalf("SetDeletedAt(nil) error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRoles_RoundTrip(t *testing.T) {
	roles := []models.Role{models.RoleUser, models.RoleAdmin}
	got := splitRoles(joinRoles(roles))
	if len(got) != 2 || got[0] != models.RoleUser || got[1] != models.RoleAdmin {
		t.Fatalf("unexpected roles: %v", got)
	}
	if r := splitRoles(""); r == nil || len(r) != 0 {
		t.Fatalf("expected empty roles, got %v", r)
	}
}
