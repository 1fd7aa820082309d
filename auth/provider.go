// Package auth abstracts where credentials are checked. The rest of the
// app only sees a Provider and the chosen token's subject, it never
// cares whether the password was verified locally or by an external
// identity service.
package auth

import (
	"errors"

	"github.com/spf13/viper"

	"notedeck/notes-api/model"
	"notedeck/notes-api/store"
)

var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrDuplicateEmail     = errors.New("Email already exists")
)

// Provider signs up and authenticates users. Emails handed in here must
// already be normalized.
type Provider interface {
	SignUp(email, password string) (*model.User, error)
	Authenticate(email, password string) (*model.User, error)
}

// FromConfig picks the provider implementation selected in the config.
func FromConfig(s *store.Store) Provider {
	if viper.GetString("auth.provider") == "remote" {
		return NewRemote(s)
	}

	return NewLocal(s)
}
