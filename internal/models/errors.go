// internal/models/errors.go
package models

import (
	"errors"
	"fmt"
)

// ErrProductNotFound is returned when a lookup matches no row.
var ErrProductNotFound = errors.New("product not found")

// DataValidationError reports a malformed or incomplete payload.
type DataValidationError struct {
	Message string
}

func (e *DataValidationError) Error() string {
	return e.Message
}

func NewDataValidationError(format string, args ...interface{}) *DataValidationError {
	return &DataValidationError{Message: fmt.Sprintf(format, args...)}
}

// PersistenceError wraps a storage failure. The transaction it came from has
// already been rolled back, so no partial state was written.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("products: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
