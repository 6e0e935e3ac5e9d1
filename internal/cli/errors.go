package cli

import (
	"errors"

	"github.com/taskdeck/taskdeck/internal/deck"
	"github.com/taskdeck/taskdeck/internal/models"
)

// CodeFor maps a deck error to the exit code the command should finish with.
func CodeFor(err error) int {
	var verr *deck.ValidationError
	switch {
	case errors.As(err, &verr):
		return ExitValidation
	case errors.Is(err, models.ErrTaskNotFound), errors.Is(err, models.ErrColumnNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrDuplicateKey), errors.Is(err, models.ErrProtectedColumn):
		return ExitValidation
	default:
		return ExitError
	}
}

// CodeName maps a deck error to the machine-readable code used in JSON
// output.
func CodeName(err error) string {
	var verr *deck.ValidationError
	switch {
	case errors.As(err, &verr):
		return "VALIDATION_FAILED"
	case errors.Is(err, models.ErrTaskNotFound):
		return "TASK_NOT_FOUND"
	case errors.Is(err, models.ErrColumnNotFound):
		return "FIELD_NOT_FOUND"
	case errors.Is(err, models.ErrDuplicateKey):
		return "DUPLICATE_KEY"
	case errors.Is(err, models.ErrProtectedColumn):
		return "PROTECTED_FIELD"
	default:
		return "ERROR"
	}
}
