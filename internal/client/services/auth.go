// Package services contains application services for the users CLI.
// This file defines the session service: login, resuming a saved session,
// token verification, logout and the server health check.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/usersvc/internal/client/client"
	"github.com/dmitrijs2005/usersvc/internal/client/repositories/session"
	"github.com/dmitrijs2005/usersvc/internal/dbx"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
)

// ErrNoSession is returned by Resume when no token was saved.
var ErrNoSession = errors.New("no saved session")

// AuthService defines session operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and persist the session.
//   - Resume: restore the saved token and re-verify it with the server.
//   - Verify: verify the current token and persist the refreshed one.
//   - Logout: forget the token locally.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.UserProfile, error)
	Resume(ctx context.Context) (*models.UserProfile, error)
	Verify(ctx context.Context) (*models.UserProfile, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client
// and a local SQL database for the session.
type authService struct {
	client client.Client
	db     *sql.DB
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(client client.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) getSessionRepo(db dbx.DBTX) session.Repository {
	return session.NewSQLiteRepository(db)
}

func (a *authService) Login(ctx context.Context, username, password string) (*models.UserProfile, error) {
	user, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.saveSession(ctx, user.Username); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return user, nil
}

// Resume loads the saved token and verifies it. A rejected token is dropped
// from the session so the next start asks for credentials.
func (a *authService) Resume(ctx context.Context) (*models.UserProfile, error) {
	token, err := a.getSessionRepo(a.db).Get(ctx, session.KeyAccessToken)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNoSession
	}

	a.client.SetAccessToken(token)

	user, err := a.Verify(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.client.SetAccessToken("")
			_ = a.getSessionRepo(a.db).Delete(ctx, session.KeyAccessToken)
		}
		return nil, err
	}
	return user, nil
}

func (a *authService) Verify(ctx context.Context) (*models.UserProfile, error) {
	user, err := a.client.Verify(ctx)
	if err != nil {
		return nil, err
	}

	if err := a.saveSession(ctx, user.Username); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return user, nil
}

// saveSession persists the username and the client's current token in a
// single transaction.
func (a *authService) saveSession(ctx context.Context, username string) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.getSessionRepo(tx)
		if err := repo.Set(ctx, session.KeyUsername, username); err != nil {
			return err
		}
		return repo.Set(ctx, session.KeyAccessToken, a.client.AccessToken())
	})
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.SetAccessToken("")
	return a.getSessionRepo(a.db).Clear(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
