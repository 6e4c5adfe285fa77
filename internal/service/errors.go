package service

import (
	"errors"
	"fmt"
)

// Domain errors. Handlers map them to HTTP status codes.
var (
	ErrValidation         = errors.New("validation failed")
	ErrUnauthorized       = errors.New("could not validate credentials")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrNotFound           = errors.New("expense not found")
	ErrConflict           = errors.New("email already registered")
)

// validationError carries a caller-facing message and matches ErrValidation.
type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Is(target error) bool { return target == ErrValidation }

func invalid(format string, args ...any) error {
	return &validationError{msg: fmt.Sprintf(format, args...)}
}
