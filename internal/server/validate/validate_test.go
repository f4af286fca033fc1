package validate

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/usersvc/internal/common"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validID = "6f1c2a8e-3b4d-4e5f-9a6b-7c8d9e0f1a2b"

func requireValidation(t *testing.T, err error, contains string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorValidation), "want validation error, got %v", err)
	assert.Contains(t, err.Error(), contains)
}

func strPtr(s string) *string { return &s }

func TestNewUser_Normalizes(t *testing.T) {
	in := &models.NewUser{
		Username:  "  Alice ",
		Email:     " Alice@Example.COM",
		Roles:     []models.Role{"Admin", "user"},
		CreatedBy: strPtr(" " + validID),
	}
	require.NoError(t, NewUser(in))
	assert.Equal(t, "alice", in.Username)
	assert.Equal(t, "alice@example.com", in.Email)
	assert.Equal(t, []models.Role{models.RoleAdmin, models.RoleUser}, in.Roles)
	assert.Equal(t, validID, *in.CreatedBy)
}

func TestNewUser_NoCreatorAllowed(t *testing.T) {
	in := &models.NewUser{Username: "Root", Email: "Root@Example.COM"}
	require.NoError(t, NewUser(in))
	assert.Equal(t, "root", in.Username)
	assert.Equal(t, "root@example.com", in.Email)
	assert.Nil(t, in.CreatedBy)
}

func TestNewUser_Rejects(t *testing.T) {
	base := func() *models.NewUser {
		return &models.NewUser{Username: "alice", Email: "alice@example.com", CreatedBy: strPtr(validID)}
	}

	tests := []struct {
		name     string
		mutate   func(in *models.NewUser)
		contains string
	}{
		{"short username", func(in *models.NewUser) { in.Username = "a" }, "username"},
		{"bad email", func(in *models.NewUser) { in.Email = "nope" }, "email"},
		{"short password", func(in *models.NewUser) { in.Password = "Ab1!" }, "password"},
		{"weak password", func(in *models.NewUser) { in.Password = "alllowercase1" }, "password"},
		{"unknown role", func(in *models.NewUser) { in.Roles = []models.Role{"root"} }, "roles"},
		{"blank role", func(in *models.NewUser) { in.Roles = []models.Role{" "} }, "roles"},
		{"blank creator", func(in *models.NewUser) { in.CreatedBy = strPtr("") }, "createdBy"},
		{"bad creator", func(in *models.NewUser) { in.CreatedBy = strPtr("42") }, "createdBy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base()
			tt.mutate(in)
			requireValidation(t, NewUser(in), tt.contains)
		})
	}
}

func TestNewUser_StrongPasswordAccepted(t *testing.T) {
	in := &models.NewUser{Username: "alice", Email: "alice@example.com", Password: "Str0ng!pass", CreatedBy: strPtr(validID)}
	assert.NoError(t, NewUser(in))
}

func TestPatch(t *testing.T) {
	p := &models.UserPatch{Username: strPtr(" Bob ")}
	require.NoError(t, Patch(validID, p))
	assert.Equal(t, "bob", *p.Username)

	requireValidation(t, Patch("x", &models.UserPatch{}), "id")
	requireValidation(t, Patch(validID, &models.UserPatch{Email: strPtr("")}), "email")
	requireValidation(t, Patch(validID, &models.UserPatch{Roles: []models.Role{}}), "roles")
	requireValidation(t, Patch(validID, &models.UserPatch{Roles: []models.Role{"owner"}}), "roles")
	requireValidation(t, Patch(validID, &models.UserPatch{Password: strPtr("short")}), "password")
}

func TestLogin_LowercasesUsername(t *testing.T) {
	username, err := Login(" ALICE", "x")
	require.NoError(t, err)
	assert.Equal(t, "alice", username)

	_, err = Login("alice", "")
	requireValidation(t, err, "password")

	_, err = Login("  ", "x")
	requireValidation(t, err, "username")
}

func TestIDs_FailsFast(t *testing.T) {
	assert.NoError(t, IDs([]string{validID}))
	requireValidation(t, IDs([]string{validID, "nope"}), "ids")
	requireValidation(t, IDs(nil), "ids")
}

func TestPage(t *testing.T) {
	assert.NoError(t, Page(models.Pagination{}))
	requireValidation(t, Page(models.Pagination{Page: -1}), "page")
	requireValidation(t, Page(models.Pagination{Limit: -5}), "limit")
}
