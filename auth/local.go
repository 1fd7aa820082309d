package auth

import (
	"errors"

	"notedeck/notes-api/model"
	"notedeck/notes-api/security"
	"notedeck/notes-api/store"
)

// Local verifies credentials against the app's own user table.
type Local struct {
	store  *store.Store
	hasher *security.ArgonHash
}

func NewLocal(s *store.Store) *Local {
	return &Local{
		store:  s,
		hasher: security.New(),
	}
}

func (l *Local) SignUp(email, password string) (*model.User, error) {
	hash, err := l.hasher.GenerateFromPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := l.store.CreateUser(email, hash)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}

		return nil, err
	}

	return user, nil
}

func (l *Local) Authenticate(email, password string) (*model.User, error) {
	user, err := l.store.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	ok, err := l.hasher.VerifyPasswd(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
