package repository

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUserNotFound   = errors.New("user not found")

	// ErrDuplicateRecord surfaces a unique-index violation from the database.
	// The services pre-check uniqueness, but a concurrent writer can still win
	// the race; the index is the authority and this error is how it answers.
	ErrDuplicateRecord = errors.New("record violates a unique constraint")
)
