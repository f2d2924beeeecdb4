package core

import "github.com/pkg/errors"

// FieldError names one rejected field by its JSON name, e.g. "studentId".
type FieldError struct {
	Field string
	Error string
}

// ValidationError reports request fields rejected before reaching the journal,
// such as an unknown studentId or a duplicate student id. The API answers it with 400.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

type shutdown struct {
	message string
}

// NewShutdownError marks an error the server cannot recover from, such as a closed database connection.
func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
