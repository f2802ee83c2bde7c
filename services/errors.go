package services

import (
	"errors"

	"github.com/securelog/securelog/cipher"
)

// Client input errors. Callers can show their messages verbatim.
var (
	ErrMissingKey       = errors.New("key (shift value) is required and cannot be empty")
	ErrMissingData      = errors.New("data is required and cannot be empty")
	ErrInvalidKey       = cipher.ErrInvalidKey
	ErrUnknownOperation = errors.New("unknown operation")
	ErrInvalidPageSize  = errors.New("size must be at least 1")
	ErrInvalidOffset    = errors.New("offset cannot be negative")
)

// ErrAuditWriteFailed means the transform succeeded but its audit record could
// not be committed, so the result was withheld.
var ErrAuditWriteFailed = errors.New("audit record could not be written")

// IsClientError reports whether err was caused by invalid caller input
func IsClientError(err error) bool {
	return errors.Is(err, ErrMissingKey) ||
		errors.Is(err, ErrMissingData) ||
		errors.Is(err, ErrInvalidKey) ||
		errors.Is(err, ErrUnknownOperation) ||
		errors.Is(err, ErrInvalidPageSize) ||
		errors.Is(err, ErrInvalidOffset)
}
