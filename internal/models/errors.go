package models

import "errors"

// Domain errors shared by the repository and handler layers.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrValidation        = errors.New("missing required field")
	ErrNotFound          = errors.New("record not found")
)
