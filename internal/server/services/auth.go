// Package services contains server-side business logic: the authentication
// flow (login, token verification) and the user lifecycle.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/usersvc/internal/common"
	"github.com/dmitrijs2005/usersvc/internal/dbx"
	"github.com/dmitrijs2005/usersvc/internal/logging"
	"github.com/dmitrijs2005/usersvc/internal/server/auth"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"github.com/dmitrijs2005/usersvc/internal/server/repositories/repomanager"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidToken       = "Invalid token"
)

// AuthResult is returned by Login and VerifyToken.
type AuthResult struct {
	User  *models.UserProfile
	Token string
}

// AuthService checks credentials and issues or re-issues tokens.
type AuthService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	tokens      *auth.TokenCodec
	hasher      auth.PasswordHasher
	log         logging.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(db dbx.DBTX, m repomanager.RepositoryManager, tokens *auth.TokenCodec,
	hasher auth.PasswordHasher, log logging.Logger) *AuthService {
	return &AuthService{db: db, repomanager: m, tokens: tokens, hasher: hasher, log: log}
}

// Login verifies username and password and issues a token for the user.
// Unknown usernames and wrong passwords fail with the same Unauthorized
// error; any other failure is reported as BadRequest.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "Login", trace.WithAttributes(
		attribute.String("username", username),
	))
	defer span.End()

	res, err := s.login(ctx, username, password)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "login failed")
		if errors.Is(err, common.ErrorUnauthorized) {
			s.log.Warn(ctx, "login rejected", "username", username)
			return nil, common.NewError(common.ErrorUnauthorized, msgInvalidCredentials)
		}
		s.log.Error(ctx, "login failed", "username", username, "error", err)
		return nil, common.NewError(common.ErrorBadRequest, common.Message(err))
	}

	span.SetStatus(codes.Ok, "user logged in")
	return res, nil
}

func (s *AuthService) login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}

	ok, err := s.hasher.Compare(user.Password, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	token, err := s.tokens.Sign(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user.Profile(), Token: token}, nil
}

// VerifyToken checks token, re-validates that its subject still exists and
// returns the subject with a freshly issued token. Every failure collapses
// to Unauthorized "Invalid token".
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*AuthResult, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "VerifyToken")
	defer span.End()

	user, err := s.Authenticate(ctx, token)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "token rejected")
		return nil, err
	}

	fresh, err := s.tokens.Sign(user.ID)
	if err != nil {
		s.log.Error(ctx, "token re-issue failed", "user_id", user.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "token rejected")
		return nil, invalidToken()
	}

	span.SetStatus(codes.Ok, "token verified")
	return &AuthResult{User: user.Profile(), Token: fresh}, nil
}

// Authenticate resolves the user a token was issued for. It fails with
// Unauthorized "Invalid token" for bad, expired or orphaned tokens.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	payload, err := s.tokens.Verify(token)
	if err != nil {
		s.log.Warn(ctx, "token verification failed", "error", err)
		return nil, invalidToken()
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, payload.ID)
	if err != nil {
		s.log.Warn(ctx, "token subject lookup failed", "user_id", payload.ID, "error", err)
		return nil, invalidToken()
	}

	return user, nil
}

func invalidToken() error {
	return common.NewError(common.ErrorUnauthorized, msgInvalidToken)
}
