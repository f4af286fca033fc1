package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/usersvc/internal/common"
	"github.com/dmitrijs2005/usersvc/internal/dbx"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const selectUser = `SELECT u.id, u.username, u.email, u.password, array_to_string(u.roles, ','), u.created_by,
		u.created_at, u.updated_at, u.deleted_at, c.id, c.username, c.email
	 FROM users u
	 LEFT JOIN users c ON c.id = u.created_by`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (username, email, password, roles, created_by)
		 VALUES ($1, $2, $3, string_to_array($4, ','), $5)
		 RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.Password, joinRoles(user.Roles), nullString(user.CreatedBy),
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return nil, wrapError(err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, selectUser+` WHERE u.id = $1`, id)
}

func (r *PostgresRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, selectUser+` WHERE u.id = $1 FOR UPDATE OF u`, id)
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, selectUser+` WHERE u.username = $1`, username)
}

func (r *PostgresRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	if username == "" && email == "" {
		return nil, common.ErrorNotFound
	}
	return r.getOne(ctx, selectUser+`
	 WHERE ($1 <> '' AND u.username = $1) OR ($2 <> '' AND u.email = $2)
	 ORDER BY u.created_at
	 LIMIT 1`, username, email)
}

func (r *PostgresRepository) GetSummary(ctx context.Context, id string) (*models.UserSummary, error) {
	query := `SELECT id, username, email FROM users WHERE id = $1`

	s := &models.UserSummary{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Username, &s.Email)
	if err != nil {
		return nil, wrapError(err)
	}

	return s, nil
}

func (r *PostgresRepository) FindSummaries(ctx context.Context, ids []string) ([]models.UserSummary, error) {
	if len(ids) == 0 {
		return []models.UserSummary{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := `SELECT id, username, email FROM users WHERE id IN (` + strings.Join(placeholders, ", ") + `)`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapError(err)
	}
	defer rows.Close()

	result := make([]models.UserSummary, 0, len(ids))
	for rows.Next() {
		var s models.UserSummary
		if err := rows.Scan(&s.ID, &s.Username, &s.Email); err != nil {
			return nil, wrapError(err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError(err)
	}

	return result, nil
}

func (r *PostgresRepository) FindCreatedBy(ctx context.Context, creatorID string) ([]models.CreatedUser, error) {
	query :=
		`SELECT id, username, email, created_at, updated_at FROM users
		 WHERE created_by = $1
		 ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, creatorID)
	if err != nil {
		return nil, wrapError(err)
	}
	defer rows.Close()

	result := []models.CreatedUser{}
	for rows.Next() {
		var c models.CreatedUser
		if err := rows.Scan(&c.ID, &c.Username, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, wrapError(err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError(err)
	}

	return result, nil
}

func (r *PostgresRepository) Count(ctx context.Context, includeDeleted bool) (int, error) {
	query := `SELECT COUNT(*) FROM users u` + visibility(includeDeleted)

	var total int
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, wrapError(err)
	}

	return total, nil
}

func (r *PostgresRepository) List(ctx context.Context, offset, limit int, includeDeleted bool) ([]*models.User, error) {
	query := selectUser + visibility(includeDeleted) + `
	 ORDER BY u.created_at DESC, u.id DESC
	 LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, wrapError(err)
	}
	defer rows.Close()

	result := make([]*models.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, wrapError(err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError(err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, patch models.UserPatch) error {
	sets := []string{}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Username != nil {
		add("username", *patch.Username)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Password != nil {
		add("password", *patch.Password)
	}
	if patch.Roles != nil {
		args = append(args, joinRoles(patch.Roles))
		sets = append(sets, fmt.Sprintf("roles = string_to_array($%d, ',')", len(args)))
	}
	if len(sets) == 0 {
		return nil
	}

	query := `UPDATE users SET ` + strings.Join(sets, ", ") + `, updated_at = now() WHERE id = $1`

	return r.execOne(ctx, query, args...)
}

func (r *PostgresRepository) SetDeletedAt(ctx context.Context, id string, deletedAt *time.Time) error {
	query := `UPDATE users SET deleted_at = $2, updated_at = now() WHERE id = $1`

	var value sql.NullTime
	if deletedAt != nil {
		value = sql.NullTime{Time: *deletedAt, Valid: true}
	}

	return r.execOne(ctx, query, id, value)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapError(err)
	}
	return u, nil
}

func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapError(err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*models.User, error) {
	var (
		u                                    models.User
		roles                                string
		createdBy                            sql.NullString
		deletedAt                            sql.NullTime
		creatorID, creatorName, creatorEmail sql.NullString
	)

	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &roles, &createdBy,
		&u.CreatedAt, &u.UpdatedAt, &deletedAt, &creatorID, &creatorName, &creatorEmail)
	if err != nil {
		return nil, err
	}

	u.Roles = splitRoles(roles)
	if createdBy.Valid {
		u.CreatedBy = &createdBy.String
	}
	if deletedAt.Valid {
		u.DeletedAt = &deletedAt.Time
	}
	if creatorID.Valid {
		u.Creator = &models.UserSummary{ID: creatorID.String, Username: creatorName.String, Email: creatorEmail.String}
	}

	return &u, nil
}

func visibility(includeDeleted bool) string {
	if includeDeleted {
		return ""
	}
	return ` WHERE u.deleted_at IS NULL`
}

func joinRoles(roles []models.Role) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ",")
}

func splitRoles(s string) []models.Role {
	if s == "" {
		return []models.Role{}
	}
	parts := strings.Split(s, ",")
	roles := make([]models.Role, len(parts))
	for i, p := range parts {
		roles[i] = models.Role(p)
	}
	return roles
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func wrapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return common.NewError(common.ErrorConflict, "username or email already exists")
	}
	return fmt.Errorf("db error: %w", err)
}
