package services

import "errors"

// Service errors, mapped to HTTP status codes by the handlers.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("wrong username or password")
	ErrInvalidRole        = errors.New("role must be admin or editor")
	ErrSelfAction         = errors.New("operation not allowed on own account")
)
