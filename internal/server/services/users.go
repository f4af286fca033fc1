package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/usersvc/internal/common"
	"github.com/dmitrijs2005/usersvc/internal/dbx"
	"github.com/dmitrijs2005/usersvc/internal/logging"
	"github.com/dmitrijs2005/usersvc/internal/server/auth"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"github.com/dmitrijs2005/usersvc/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/usersvc/internal/server/repositories/users"
	"github.com/dmitrijs2005/usersvc/internal/server/validate"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const msgCreateFailed = "Error creating the user"

// UserService manages the user lifecycle: provisioning, role-gated listing,
// lookups, updates and the soft-delete state machine.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	log         logging.Logger
	now         func() time.Time
}

// NewUserService constructs a UserService on top of db.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher, log logging.Logger) *UserService {
	return &UserService{db: db, repomanager: m, hasher: hasher, log: log, now: time.Now}
}

func (s *UserService) repo() users.Repository {
	return s.repomanager.Users(s.db)
}

func (s *UserService) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer("UserService").Start(ctx, op, trace.WithAttributes(attrs...))
}

func (s *UserService) fail(ctx context.Context, span trace.Span, op string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, common.Message(err))
	if !isCategorized(err) {
		s.log.Error(ctx, op+" failed", "error", err)
	}
	return err
}

// Create provisions a user. A missing password is replaced by a generated
// temporary one. The effective plaintext password is returned once.
func (s *UserService) Create(ctx context.Context, in models.NewUser) (*models.ProvisionedUser, error) {
	ctx, span := s.start(ctx, "Create", attribute.String("username", in.Username))
	defer span.End()

	password := in.Password
	if password == "" {
		password = common.GenerateTemporaryPassword(common.TemporaryPasswordLength)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.log.Error(ctx, "password hashing failed", "error", err)
		return nil, s.fail(ctx, span, "create", common.NewError(common.ErrorBadRequest, msgCreateFailed))
	}

	roles := in.Roles
	if len(roles) == 0 {
		roles = []models.Role{models.RoleUser}
	}

	user, err := s.repo().Create(ctx, &models.User{
		Username:  in.Username,
		Email:     in.Email,
		Password:  hash,
		Roles:     roles,
		CreatedBy: in.CreatedBy,
	})
	if err != nil {
		s.log.Error(ctx, "user insert failed", "username", in.Username, "error", err)
		msg := msgCreateFailed
		if errors.Is(err, common.ErrorConflict) {
			msg = msgCreateFailed + ": " + common.Message(err)
		}
		return nil, s.fail(ctx, span, "create", common.NewError(common.ErrorBadRequest, msg))
	}

	span.SetStatus(codes.Ok, "user created")
	return &models.ProvisionedUser{UserProfile: *user.Profile(), Password: password}, nil
}

// FindAll returns one page of users, newest first. Admin requesters also
// see soft-deleted users.
func (s *UserService) FindAll(ctx context.Context, page models.Pagination, requester *models.User) (*models.UserList, error) {
	includeDeleted := requester != nil && requester.IsAdmin()

	ctx, span := s.start(ctx, "FindAll",
		attribute.Int("page", page.Page),
		attribute.Int("limit", page.Limit),
		attribute.Bool("include_deleted", includeDeleted),
	)
	defer span.End()

	if page.Page < 1 || page.Limit < 1 {
		return nil, s.fail(ctx, span, "findAll", common.NewError(common.ErrorValidation, "page and limit must be positive"))
	}

	repo := s.repo()

	total, err := repo.Count(ctx, includeDeleted)
	if err != nil {
		return nil, s.fail(ctx, span, "findAll", err)
	}

	list, err := repo.List(ctx, page.Offset(), page.Limit, includeDeleted)
	if err != nil {
		return nil, s.fail(ctx, span, "findAll", err)
	}

	data := make([]*models.UserProfile, 0, len(list))
	for _, u := range list {
		data = append(data, u.Profile())
	}

	span.SetStatus(codes.Ok, "users listed")
	return &models.UserList{
		Meta: models.ListMeta{Total: total, Page: page.Page, LastPage: models.LastPage(total, page.Limit)},
		Data: data,
	}, nil
}

// FindOne returns the user with the given id, active or disabled.
func (s *UserService) FindOne(ctx context.Context, id string) (*models.UserProfile, error) {
	ctx, span := s.start(ctx, "FindOne", attribute.String("user_id", id))
	defer span.End()

	u, err := s.repo().GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, span, "findOne", notFoundByID(id, err))
	}
	return u.Profile(), nil
}

// FindByUsernameOrEmail matches on whichever of username and email is set.
// The not-found message names email when it was given, username otherwise.
func (s *UserService) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserProfile, error) {
	ctx, span := s.start(ctx, "FindByUsernameOrEmail")
	defer span.End()

	u, err := s.repo().FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			filter, value := "username", username
			if email != "" {
				filter, value = "email", email
			}
			err = common.NewError(common.ErrorNotFound, fmt.Sprintf("User with %s %s not found", filter, value))
		}
		return nil, s.fail(ctx, span, "findByUsernameOrEmail", err)
	}
	return u.Profile(), nil
}

// FindOneWithMeta returns the user together with the users it created.
func (s *UserService) FindOneWithMeta(ctx context.Context, id string) (*models.UserProfile, error) {
	ctx, span := s.start(ctx, "FindOneWithMeta", attribute.String("user_id", id))
	defer span.End()

	repo := s.repo()

	u, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, span, "findOneWithMeta", notFoundByID(id, err))
	}

	created, err := repo.FindCreatedBy(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, span, "findOneWithMeta", err)
	}

	p := u.Profile()
	p.CreatorOf = created
	return p, nil
}

// FindOneWithSummary returns only the display identity of a user.
func (s *UserService) FindOneWithSummary(ctx context.Context, id string) (*models.UserSummary, error) {
	ctx, span := s.start(ctx, "FindOneWithSummary", attribute.String("user_id", id))
	defer span.End()

	summary, err := s.repo().GetSummary(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, span, "findOneWithSummary", notFoundByID(id, err))
	}
	return summary, nil
}

// FindSummary returns the display identities of the given ids. Unknown ids
// are skipped.
func (s *UserService) FindSummary(ctx context.Context, ids []string) ([]models.UserSummary, error) {
	ctx, span := s.start(ctx, "FindSummary", attribute.Int("count", len(ids)))
	defer span.End()

	summaries, err := s.repo().FindSummaries(ctx, ids)
	if err != nil {
		return nil, s.fail(ctx, span, "findSummary", err)
	}
	return summaries, nil
}

// Update applies patch to an existing user. A new password is hashed before
// it is stored. The existence check and the write share one transaction.
func (s *UserService) Update(ctx context.Context, id string, patch models.UserPatch) (*models.UserProfile, error) {
	ctx, span := s.start(ctx, "Update", attribute.String("user_id", id))
	defer span.End()

	if patch.Password != nil {
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, s.fail(ctx, span, "update", fmt.Errorf("error hashing password: %w", err))
		}
		patch.Password = &hash
	}

	var result *models.UserProfile
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		if _, err := repo.GetByIDForUpdate(ctx, id); err != nil {
			return notFoundByID(id, err)
		}

		if !patch.IsEmpty() {
			if err := repo.Update(ctx, id, patch); err != nil {
				return err
			}
		}

		u, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		result = u.Profile()
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, span, "update", err)
	}

	return result, nil
}

// Remove soft-deletes an active user. Disabling a disabled user is a Conflict.
func (s *UserService) Remove(ctx context.Context, id string) (*models.UserProfile, error) {
	ctx, span := s.start(ctx, "Remove", attribute.String("user_id", id))
	defer span.End()

	res, err := s.transition(ctx, id, true)
	if err != nil {
		return nil, s.fail(ctx, span, "remove", err)
	}
	span.SetStatus(codes.Ok, "user disabled")
	return res, nil
}

// Restore re-enables a disabled user. Restoring an active user is a Conflict.
func (s *UserService) Restore(ctx context.Context, id string) (*models.UserProfile, error) {
	ctx, span := s.start(ctx, "Restore", attribute.String("user_id", id))
	defer span.End()

	res, err := s.transition(ctx, id, false)
	if err != nil {
		return nil, s.fail(ctx, span, "restore", err)
	}
	span.SetStatus(codes.Ok, "user enabled")
	return res, nil
}

// transition moves the user between the Active and Disabled states. The
// guard and the write run under a row lock.
func (s *UserService) transition(ctx context.Context, id string, disable bool) (*models.UserProfile, error) {
	var result *models.UserProfile

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		u, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return notFoundByID(id, err)
		}

		var deletedAt *time.Time
		switch {
		case disable && u.IsDeleted():
			return common.NewError(common.ErrorConflict, fmt.Sprintf("User with id %s is already disabled", id))
		case !disable && !u.IsDeleted():
			return common.NewError(common.ErrorConflict, fmt.Sprintf("User with id %s is already enabled", id))
		case disable:
			now := s.now()
			deletedAt = &now
		}

		if err := repo.SetDeletedAt(ctx, id, deletedAt); err != nil {
			return err
		}

		updated, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		result = updated.Profile()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Bootstrap creates an admin account with no creator unless a user with the
// same username already exists, in which case it returns nil. The input is
// normalized and validated like users.create. An empty password yields a
// generated one, returned in the result.
func (s *UserService) Bootstrap(ctx context.Context, username, email, password string) (*models.ProvisionedUser, error) {
	in := models.NewUser{
		Username: username,
		Email:    email,
		Password: password,
		Roles:    []models.Role{models.RoleAdmin, models.RoleUser},
	}
	if err := validate.NewUser(&in); err != nil {
		return nil, err
	}

	_, err := s.repo().GetByUsername(ctx, in.Username)
	if err == nil {
		return nil, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error looking up bootstrap admin: %w", err)
	}

	u, err := s.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "bootstrap admin created", "username", in.Username, "user_id", u.ID)
	return u, nil
}

func notFoundByID(id string, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.NewError(common.ErrorNotFound, fmt.Sprintf("User with id %s not found", id))
	}
	return err
}

func isCategorized(err error) bool {
	var e *common.Error
	return errors.As(err, &e)
}
