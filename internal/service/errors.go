package service

import "errors"

var (
	ErrInvalidEmail       = errors.New("email is not valid")
	ErrWeakPassword       = errors.New("password must be at least 10 characters and contain a digit, a lowercase letter, an uppercase letter and a special character")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("email or password not valid")
	ErrInvalidPassword    = errors.New("invalid password")

	ErrTitleTaken      = errors.New("a record with that title already exists")
	ErrCardNumberTaken = errors.New("a card with that number already exists")
	ErrNotOwner        = errors.New("record belongs to another user")
)
