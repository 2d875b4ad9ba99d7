package entity

import "errors"

// Domain error taxonomy. Services wrap these with context; handlers match
// with errors.Is to pick the HTTP status.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientSeats = errors.New("not enough seats available")
	ErrInvalidState      = errors.New("invalid state")
)
