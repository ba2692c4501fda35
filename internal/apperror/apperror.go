package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError is returned when an id or request payload is malformed.
type ValidationError struct {
	Details string
}

func (e *ValidationError) Error() string {
	return e.Details
}

// NotFoundError is returned when the requested row does not exist.
type NotFoundError struct {
	Details string
}

func (e *NotFoundError) Error() string {
	return e.Details
}

func Validation(format string, args ...any) error {
	return &ValidationError{Details: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &NotFoundError{Details: fmt.Sprintf(format, args...)}
}

// InvalidData is the error used for every rejected request body.
func InvalidData() error {
	return &ValidationError{Details: "Invalid data"}
}

// Status maps err to the HTTP status code the client should see.
func Status(err error) int {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Details returns the client-facing message for err. Unexpected errors are
// never echoed back.
func Details(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Details
	}
	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return notFoundErr.Details
	}
	return "internal server error"
}
