package user

import (
	"net/mail"
	"strings"

	"gearshare/internal/pkg/errs"
)

var (
	ErrEmptyName    = errs.Validation("user name cannot be empty")
	ErrEmptyEmail   = errs.Validation("user email cannot be empty")
	ErrInvalidEmail = errs.Validation("user email has an invalid format")
)

type User struct {
	id    int64
	name  string
	email string
}

// New validates profile fields for a user that has no id yet; the store
// assigns the surrogate key on insert.
func New(name, email string) (*User, error) {
	return newUser(0, name, email)
}

// Reconstruct rebuilds a user from stored state, re-applying field validation.
func Reconstruct(id int64, name, email string) (*User, error) {
	return newUser(id, name, email)
}

func newUser(id int64, name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, ErrInvalidEmail
	}
	return &User{id: id, name: name, email: email}, nil
}

func (u *User) ID() int64     { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }
