package domain

import "errors"

// ErrNotFound is returned by store and service functions when the requested
// outlet does not exist on the board.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails a catalog
// or field rule (e.g. unknown stage, unknown city, unknown priority).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConfirmationRequired is returned by destructive operations that were
// invoked without an explicit confirmation.
// Handlers should map this to HTTP 428 Precondition Required.
var ErrConfirmationRequired = errors.New("confirmation required")
