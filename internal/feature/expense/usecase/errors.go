package usecase

import "errors"

// ErrExpenseNotFound is returned when no expense matches the requested ID.
var ErrExpenseNotFound = errors.New("expense not found")
