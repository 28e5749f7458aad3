package services

import "errors"

// Failure taxonomy shared by every operation. Handlers translate these
// into the response envelope; anything unrecognized is a server error.
var (
	ErrNotFound            = errors.New("record not found")
	ErrBadRequest          = errors.New("bad request")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrWriteFailed         = errors.New("write failed")
)
