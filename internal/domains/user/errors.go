package user

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so callers cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrTooManyAttempts    = errors.New("too many failed login attempts, try again later")
)
