package apperrors

import "errors"

// Error kinds shared by the storage, service and seeding layers. Callers wrap
// them with %w and test with errors.Is.
var (
	ErrNotFound            = errors.New("record not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrMalformedInput      = errors.New("malformed input")
)
