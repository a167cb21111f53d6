package util

import (
	"errors"
	"fmt"
)

// Error taxonomy. Controllers map these to HTTP statuses with errors.Is;
// services wrap them with %w so the category survives the message.
var (
	ErrValidation       = errors.New("validation failed")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrTransport        = errors.New("store unavailable")

	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMustCompleteCourse = fmt.Errorf("%w: must complete course before rating", ErrPermissionDenied)
)

func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Transportf(err error) error {
	return fmt.Errorf("%w: %v", ErrTransport, err)
}
