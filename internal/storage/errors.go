package storage

import "errors"

// Domain failure classes. The HTTP layer maps these to status codes:
// ErrNotFound -> 404, ErrForbidden -> 403, ErrConflict -> 409, and
// ErrInvalidTransition / ErrValidation -> 400. Detail is carried by
// wrapping, e.g. fmt.Errorf("%w: already completed", ErrInvalidTransition).
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrValidation        = errors.New("validation failed")
	ErrConflict          = errors.New("conflict")
)
