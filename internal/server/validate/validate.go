// Package validate normalizes and checks user input before it reaches the
// services. The gRPC handlers and the bootstrap admin path share it, so every
// stored username and email is trimmed and lowercased the same way.
package validate

import (
	"errors"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/usersvc/internal/common"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	MinUsernameLength = 2
	MinPasswordLength = 8
)

var (
	errWeakPassword = errors.New("must contain lower and upper case letters, a digit and a symbol")
	errUnknownRole  = errors.New("must be a valid value")
)

// Normalize trims s and lowercases it.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	n := Normalize(*s)
	return &n
}

func normalizeRoles(roles []models.Role) {
	for i := range roles {
		roles[i] = models.Role(Normalize(string(roles[i])))
	}
}

// invalid wraps an ozzo-validation failure as a Validation error.
func invalid(err error) error {
	if err == nil {
		return nil
	}
	return common.NewError(common.ErrorValidation, err.Error())
}

// strongPassword requires at least one lower case letter, one upper case
// letter, one digit and one symbol.
func strongPassword(value interface{}) error {
	s, _ := value.(string)
	if p, ok := value.(*string); ok && p != nil {
		s = *p
	}
	if s == "" {
		return nil
	}

	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	if !lower || !upper || !digit || !symbol {
		return errWeakPassword
	}
	return nil
}

func knownRole(value interface{}) error {
	r, _ := value.(models.Role)
	if !models.IsKnownRole(r) {
		return errUnknownRole
	}
	return nil
}

func ID(id string) error {
	if err := validation.Validate(id, validation.Required, is.UUID); err != nil {
		return common.NewError(common.ErrorValidation, "id: "+err.Error())
	}
	return nil
}

// IDs fails on the first malformed id.
func IDs(ids []string) error {
	if err := validation.Validate(ids, validation.Required, validation.Each(validation.Required, is.UUID)); err != nil {
		return common.NewError(common.ErrorValidation, "ids: "+err.Error())
	}
	return nil
}

// Login returns the normalized username once both credentials are present.
func Login(username, password string) (string, error) {
	username = Normalize(username)
	return username, invalid(validation.Errors{
		"username": validation.Validate(username, validation.Required),
		"password": validation.Validate(password, validation.Required),
	}.Filter())
}

// NewUser normalizes in and checks it. A nil CreatedBy is accepted: only the
// bootstrap admin has no creator.
func NewUser(in *models.NewUser) error {
	in.Username = Normalize(in.Username)
	in.Email = Normalize(in.Email)
	if in.CreatedBy != nil {
		createdBy := strings.TrimSpace(*in.CreatedBy)
		in.CreatedBy = &createdBy
	}
	normalizeRoles(in.Roles)

	return invalid(validation.Errors{
		"username":  validation.Validate(in.Username, validation.Required, validation.Length(MinUsernameLength, 0)),
		"email":     validation.Validate(in.Email, validation.Required, is.Email),
		"password":  validation.Validate(in.Password, validation.Length(MinPasswordLength, 0), validation.By(strongPassword)),
		"roles":     validation.Validate(in.Roles, validation.Each(validation.By(knownRole))),
		"createdBy": validation.Validate(in.CreatedBy, validation.NilOrNotEmpty, is.UUID),
	}.Filter())
}

// Patch normalizes p and checks the fields it sets.
func Patch(id string, p *models.UserPatch) error {
	if err := ID(id); err != nil {
		return err
	}
	p.Username = normalizePtr(p.Username)
	p.Email = normalizePtr(p.Email)
	normalizeRoles(p.Roles)

	return invalid(validation.Errors{
		"username": validation.Validate(p.Username, validation.NilOrNotEmpty, validation.Length(MinUsernameLength, 0)),
		"email":    validation.Validate(p.Email, validation.NilOrNotEmpty, is.Email),
		"password": validation.Validate(p.Password, validation.NilOrNotEmpty, validation.Length(MinPasswordLength, 0), validation.By(strongPassword)),
		"roles":    validation.Validate(p.Roles, validation.NilOrNotEmpty, validation.Each(validation.By(knownRole))),
	}.Filter())
}

// Page checks a requested page window. Zero values are left for the caller
// to default.
func Page(p models.Pagination) error {
	return invalid(validation.Errors{
		"page":  validation.Validate(p.Page, validation.Min(1)),
		"limit": validation.Validate(p.Limit, validation.Min(1)),
	}.Filter())
}
