// Package seed carries the built-in dataset a fresh deck starts from when the
// persistence adapter has nothing stored (or what it stored no longer
// parses). Zero custom columns, a fixed task list.
package seed

import (
	_ "embed"
	"encoding/json"
	"log/slog"

	"github.com/taskdeck/taskdeck/internal/models"
)

//go:embed todo.json
var rawTasks []byte

// Tasks returns the seed task list, most recent first.
func Tasks() []*models.Task {
	var tasks []*models.Task
	if err := json.Unmarshal(rawTasks, &tasks); err != nil {
		// embedded data, only reachable if the build itself is broken
		slog.Error("failed to decode seed tasks", "error", err)
		return nil
	}
	return tasks
}
