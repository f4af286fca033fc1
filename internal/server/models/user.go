// Package models holds the server-side domain types shared by repositories,
// services and the RPC layer.
package models

import "time"

// Role is a role tag attached to a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// KnownRoles lists every role the service accepts.
var KnownRoles = []Role{RoleUser, RoleAdmin}

// IsKnownRole reports whether r is one of KnownRoles.
func IsKnownRole(r Role) bool {
	for _, k := range KnownRoles {
		if k == r {
			return true
		}
	}
	return false
}

// HasRoles reports whether roles contains at least one of required.
func HasRoles(roles []Role, required ...Role) bool {
	for _, have := range roles {
		for _, want := range required {
			if have == want {
				return true
			}
		}
	}
	return false
}

// User is the stored identity record. Password holds the bcrypt hash.
// CreatedBy is a weak reference: the creator may be disabled or gone.
type User struct {
	ID        string
	Username  string
	Email     string
	Password  string
	Roles     []Role
	CreatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time

	// Creator is filled by lookups that join the creator's summary.
	Creator *UserSummary
}

// IsDeleted reports whether the user is soft-deleted (disabled).
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return HasRoles(u.Roles, RoleAdmin)
}

// Profile returns the caller-facing view of u, without the password hash
// and the raw createdBy reference.
func (u *User) Profile() *UserProfile {
	roles := make([]Role, len(u.Roles))
	copy(roles, u.Roles)
	return &UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		DeletedAt: u.DeletedAt,
		Creator:   u.Creator,
	}
}

// Summary returns the display identity of u.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}

// UserSummary is the display identity handed to low-trust callers.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CreatedUser is one entry of the reverse createdBy lookup.
type CreatedUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserProfile is a user as returned to callers. It has no password field.
type UserProfile struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	Roles     []Role        `json:"roles"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	DeletedAt *time.Time    `json:"deletedAt"`
	Creator   *UserSummary  `json:"creator"`
	CreatorOf []CreatedUser `json:"creatorOf,omitempty"`
}

// ProvisionedUser is the result of users.create: the profile plus the
// effective plaintext password, returned exactly once.
type ProvisionedUser struct {
	UserProfile
	Password string `json:"password"`
}

// NewUser is the input of users.create. An empty Password asks the service
// to generate a temporary one; empty Roles default to RoleUser.
type NewUser struct {
	Username  string
	Email     string
	Password  string
	Roles     []Role
	CreatedBy *string
}

// UserPatch lists the fields users.update may change. Nil means unchanged.
type UserPatch struct {
	Username *string
	Email    *string
	Password *string
	Roles    []Role
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.Password == nil && p.Roles == nil
}
