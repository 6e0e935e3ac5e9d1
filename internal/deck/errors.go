package deck

import (
	"fmt"
	"strings"

	"github.com/taskdeck/taskdeck/internal/models"
)

// ValidationError aggregates the per-field failures of one submit. It is
// resolved at the form boundary; nothing carrying it ever reaches the store.
type ValidationError struct {
	Fields []*models.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// PersistError reports that a mutation was applied in memory but could not be
// written through to storage. The in-memory state is the source of truth for
// the session; callers surface the failure and carry on.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("saved in memory only: %v", e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
