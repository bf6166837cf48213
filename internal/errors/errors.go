// Package errors defines the store layer's error taxonomy and maps
// storage-engine errors onto it.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// Canonical error kinds. Callers distinguish them with errors.Is; the
// store layer never panics and never retries.
var (
	// ErrNotFound: a single-row lookup matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate: a uniqueness constraint rejected the write.
	ErrDuplicate = errors.New("duplicate")
	// ErrReference: a foreign key points at a missing row.
	ErrReference = errors.New("invalid reference")
	// ErrInvalid: input rejected before or by a range/check constraint.
	ErrInvalid = errors.New("invalid input")
)

// Map converts gorm/driver errors into the canonical kinds. Anything
// unrecognized passes through unchanged and is treated as fatal by the
// calling operation.
func Map(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrReference, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	default:
		return err
	}
}

// Invalid builds an ErrInvalid with a caller-facing message. Used for
// validation performed before the insert is attempted.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// NotFound builds an ErrNotFound with a caller-facing message.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// HTTPStatus maps an error kind to the status code the hosted API
// responds with. The remote client performs the inverse mapping so both
// transports share one error contract.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrReference):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// FromHTTPStatus reverses HTTPStatus for the remote store client.
func FromHTTPStatus(status int, msg string) error {
	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrDuplicate, msg)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrReference, msg)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalid, msg)
	default:
		return fmt.Errorf("remote store: status %d: %s", status, msg)
	}
}
