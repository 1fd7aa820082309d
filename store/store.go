// Package store holds all database access. Every read and write on
// folders and notes is scoped to the owning user's ID, never to request
// supplied fields.
package store

import (
	"errors"

	"gorm.io/gorm"
)

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const idLength = 16

var (
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNotFound covers both "does not exist" and "owned by someone
	// else". Collapsing the two keeps other users' row IDs unguessable.
	ErrNotFound = errors.New("record not found")
)

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}
