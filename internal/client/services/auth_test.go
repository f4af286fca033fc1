package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/usersvc/internal/client/client"
	"github.com/dmitrijs2005/usersvc/internal/client/repositories/session"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func admin() *models.UserProfile {
	return &models.UserProfile{ID: "u1", Username: "admin", Roles: []models.Role{models.RoleAdmin}}
}

func TestLogin_PersistsSession(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{LoginUser: admin(), LoginToken: "T1"}
	svc := NewAuthService(fc, db)

	u, err := svc.Login(context.Background(), "admin", "Secret#1")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)

	assert.Equal(t, "admin", getSession(t, db, session.KeyUsername))
	assert.Equal(t, "T1", getSession(t, db, session.KeyAccessToken))
}

func TestLogin_ErrorIsWrapped(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{LoginErr: fmt.Errorf("%w: Invalid credentials", client.ErrUnauthorized)}
	svc := NewAuthService(fc, db)

	_, err := svc.Login(context.Background(), "admin", "bad")
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Contains(t, err.Error(), "login error")
	assert.Empty(t, getSession(t, db, session.KeyAccessToken))
}

func TestResume_NoSession(t *testing.T) {
	svc := NewAuthService(&fakeClient{}, setupDB(t))

	_, err := svc.Resume(context.Background())
	require.ErrorIs(t, err, ErrNoSession)
}

func TestResume_VerifiesSavedToken(t *testing.T) {
	db := setupDB(t)
	_, err := db.Exec(`INSERT INTO session(key, value) VALUES (?, ?)`, session.KeyAccessToken, "T1")
	require.NoError(t, err)

	fc := &fakeClient{LoginUser: admin(), VerifyToken: "T2"}
	svc := NewAuthService(fc, db)

	u, err := svc.Resume(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
	assert.Equal(t, "T1", fc.verifiedBy)
	assert.Equal(t, "T2", getSession(t, db, session.KeyAccessToken))
}

func TestResume_RejectedTokenIsDropped(t *testing.T) {
	db := setupDB(t)
	_, err := db.Exec(`INSERT INTO session(key, value) VALUES (?, ?)`, session.KeyAccessToken, "stale")
	require.NoError(t, err)

	fc := &fakeClient{VerifyErr: fmt.Errorf("%w: Invalid token", client.ErrUnauthorized)}
	svc := NewAuthService(fc, db)

	_, err = svc.Resume(context.Background())
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Empty(t, fc.AccessToken())
	assert.Empty(t, getSession(t, db, session.KeyAccessToken))
}

func TestResume_UnavailableKeepsToken(t *testing.T) {
	db := setupDB(t)
	_, err := db.Exec(`INSERT INTO session(key, value) VALUES (?, ?)`, session.KeyAccessToken, "T1")
	require.NoError(t, err)

	fc := &fakeClient{VerifyErr: client.ErrUnavailable}
	svc := NewAuthService(fc, db)

	_, err = svc.Resume(context.Background())
	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.Equal(t, "T1", getSession(t, db, session.KeyAccessToken))
}

func TestLogout_ClearsSession(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{LoginUser: admin(), LoginToken: "T1"}
	svc := NewAuthService(fc, db)

	_, err := svc.Login(context.Background(), "admin", "Secret#1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background()))
	assert.Empty(t, fc.AccessToken())
	assert.Empty(t, getSession(t, db, session.KeyAccessToken))
	assert.Empty(t, getSession(t, db, session.KeyUsername))
}

func TestPingAndClose_Proxy(t *testing.T) {
	boom := errors.New("boom")
	fc := &fakeClient{PingErr: client.ErrUnavailable, CloseErr: boom}
	svc := NewAuthService(fc, setupDB(t))

	require.ErrorIs(t, svc.Ping(context.Background()), client.ErrUnavailable)
	require.ErrorIs(t, svc.Close(context.Background()), boom)
	assert.True(t, fc.closed)
}
