package errs

import (
	"github.com/pkg/errors"
)

// Error kinds the controllers translate into HTTP status codes. Handlers
// wrap these with pkg/errors so the kind survives wrapping and the message
// stays user facing.
var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("operation not permitted")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("record not found")
)

func Validation(msg string) error {
	return errors.Wrap(ErrValidation, msg)
}

func Validationf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrValidation, format, args...)
}

func Forbidden(msg string) error {
	return errors.Wrap(ErrForbidden, msg)
}

func Conflict(msg string) error {
	return errors.Wrap(ErrConflict, msg)
}

func NotFound(msg string) error {
	return errors.Wrap(ErrNotFound, msg)
}
