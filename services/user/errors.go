package user

import "errors"

var (
	ErrMissingFields      = errors.New("username, display name and password are required")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidUsername    = errors.New("username may only contain letters, digits, '.', '_' and '-' (3-32 characters)")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidDisplayName = errors.New("display name must not be empty")
)
