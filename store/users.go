package store

import (
	"errors"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"

	"notedeck/notes-api/model"
)

// CreateUser inserts a new user row. The email must already be
// normalized by the caller. A second insert with the same email loses
// the race at the unique constraint and comes back as
// ErrDuplicateEmail, there is no read-then-write window.
func (s *Store) CreateUser(email, passwordHash string) (*model.User, error) {
	id, err := gonanoid.Generate(idCharset, idLength)
	if err != nil {
		return nil, err
	}

	user := model.User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}

		return nil, err
	}

	return &user, nil
}

func (s *Store) FindUserByEmail(email string) (*model.User, error) {
	var user model.User

	err := s.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &user, nil
}
