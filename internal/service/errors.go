package service

import "errors"

// Shared error kinds surfaced by catalog services. Handlers map these onto
// HTTP statuses; anything else is treated as an internal failure.
var (
	// ErrUnauthorized covers both unknown usernames and wrong passwords so
	// responses never reveal which check failed.
	ErrUnauthorized = errors.New("invalid credentials")
	ErrNotFound     = errors.New("record not found")
	ErrConflict     = errors.New("record already exists")
	ErrValidation   = errors.New("invalid payload")
)
