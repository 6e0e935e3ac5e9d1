package models

import (
	"errors"
	"fmt"
)

// Domain errors shared by the schema registry, record store and deck service
var (
	// ErrDuplicateKey indicates a new column's title derives to a key that
	// is already registered
	ErrDuplicateKey = errors.New("column with same title already exists")

	// ErrColumnNotFound indicates the target column key is not registered
	ErrColumnNotFound = errors.New("column not found")

	// ErrTaskNotFound indicates the target task id does not exist
	ErrTaskNotFound = errors.New("task not found")

	// ErrProtectedColumn indicates an attempt to remove or retype a
	// built-in column
	ErrProtectedColumn = errors.New("built-in column cannot be modified")
)

// FieldError is a per-field validation failure. It carries the column key so
// forms can attach the message to the right input.
type FieldError struct {
	Key     string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Message)
}
