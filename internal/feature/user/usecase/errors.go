package usecase

import "errors"

// ErrUserNotFound is returned when no user matches the requested ID.
var ErrUserNotFound = errors.New("user not found")
