// Package users is the Record Store for user records.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/usersvc/internal/server/models"
)

// Repository persists user records. Lookups return common.ErrorNotFound when
// no row matches; unique violations surface as common.ErrorConflict.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByID returns the user with the creator's summary attached.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByIDForUpdate locks the row for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// FindByUsernameOrEmail matches whichever non-empty field is given.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)

	GetSummary(ctx context.Context, id string) (*models.UserSummary, error)
	FindSummaries(ctx context.Context, ids []string) ([]models.UserSummary, error)
	FindCreatedBy(ctx context.Context, creatorID string) ([]models.CreatedUser, error)

	Count(ctx context.Context, includeDeleted bool) (int, error)
	// List returns a page ordered by creation time, newest first.
	List(ctx context.Context, offset, limit int, includeDeleted bool) ([]*models.User, error)

	Update(ctx context.Context, id string, patch models.UserPatch) error
	SetDeletedAt(ctx context.Context, id string, deletedAt *time.Time) error
}
