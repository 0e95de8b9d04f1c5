package models

import "errors"

// ErrValidation is the root of every construction-time validation error.
// Callers match it with errors.Is to map the whole family to a client error.
var ErrValidation = errors.New("validation failed")
