package cli

import (
	"errors"
	"testing"

	"github.com/taskdeck/taskdeck/internal/deck"
	"github.com/taskdeck/taskdeck/internal/models"
)

// ============================================================================
// ERROR MAPPING
// ============================================================================

func TestCodeFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&deck.ValidationError{Fields: []*models.FieldError{{Key: "title", Message: "required"}}}, ExitValidation},
		{models.ErrTaskNotFound, ExitNotFound},
		{models.ErrColumnNotFound, ExitNotFound},
		{models.ErrDuplicateKey, ExitValidation},
		{models.ErrProtectedColumn, ExitValidation},
		{errors.New("anything else"), ExitError},
	}
	for _, tc := range cases {
		if got := CodeFor(tc.err); got != tc.want {
			t.Errorf("CodeFor(%v) = %d, expected %d", tc.err, got, tc.want)
		}
	}
}

func TestCodeName(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&deck.ValidationError{}, "VALIDATION_FAILED"},
		{models.ErrTaskNotFound, "TASK_NOT_FOUND"},
		{models.ErrColumnNotFound, "FIELD_NOT_FOUND"},
		{models.ErrDuplicateKey, "DUPLICATE_KEY"},
		{models.ErrProtectedColumn, "PROTECTED_FIELD"},
		{errors.New("anything else"), "ERROR"},
	}
	for _, tc := range cases {
		if got := CodeName(tc.err); got != tc.want {
			t.Errorf("CodeName(%v) = %q, expected %q", tc.err, got, tc.want)
		}
	}
}
