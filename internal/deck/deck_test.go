package deck

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/schema"
	"github.com/taskdeck/taskdeck/internal/seed"
	"github.com/taskdeck/taskdeck/internal/storage"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func openTestDeck(t *testing.T, adapter *storage.MemoryAdapter) *Deck {
	t.Helper()
	d, err := Open(adapter, schema.Policy{})
	if err != nil {
		t.Fatalf("Failed to open deck: %v", err)
	}
	return d
}

func mustSubmit(t *testing.T, d *Deck, id int, values map[string]any) *models.Task {
	t.Helper()
	task, err := d.SubmitTask(id, values)
	if err != nil {
		t.Fatalf("SubmitTask failed: %v", err)
	}
	return task
}

func validTask(title string) map[string]any {
	return map[string]any{
		"title":    title,
		"priority": models.PriorityNone,
		"status":   models.StatusNotStarted,
	}
}

// ============================================================================
// BOOTSTRAP
// ============================================================================

func TestOpenEmptyAdapterSeedsTasks(t *testing.T) {
	d := openTestDeck(t, storage.NewMemoryAdapter())

	if d.TaskCount() != len(seed.Tasks()) {
		t.Errorf("Expected %d seed tasks, got %d", len(seed.Tasks()), d.TaskCount())
	}
	if len(d.Columns()) != len(models.BuiltinColumns()) {
		t.Errorf("Expected only built-in columns, got %d", len(d.Columns()))
	}
}

func TestOpenMalformedDataFallsBackToSeed(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	if err := adapter.Write(storage.KeyTasks, []byte("{not json")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := adapter.Write(storage.KeyCustomColumns, []byte("also not json")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	d := openTestDeck(t, adapter)
	if d.TaskCount() != len(seed.Tasks()) {
		t.Errorf("Expected seed fallback, got %d tasks", d.TaskCount())
	}
	if len(d.Columns()) != len(models.BuiltinColumns()) {
		t.Errorf("Expected no custom columns, got %d total", len(d.Columns()))
	}
}

func TestOpenLoadsPersistedState(t *testing.T) {
	adapter := storage.NewMemoryAdapter()

	first := openTestDeck(t, adapter)
	task := mustSubmit(t, first, 0, validTask("persisted"))
	if _, err := first.AddField(schema.NewColumn{Title: "Due Date", Type: models.ColumnText}); err != nil {
		t.Fatalf("AddField failed: %v", err)
	}

	// a second session over the same adapter sees the written state
	second := openTestDeck(t, adapter)
	got, err := second.Task(task.ID)
	if err != nil {
		t.Fatalf("Task not found after reopen: %v", err)
	}
	if got.StringValue("title") != "persisted" {
		t.Errorf("Expected persisted title, got %q", got.StringValue("title"))
	}
	if _, err := second.Column("due_date"); err != nil {
		t.Errorf("Custom column not found after reopen: %v", err)
	}
}

// ============================================================================
// TASK SUBMISSION
// ============================================================================

func TestSubmitTaskCreate(t *testing.T) {
	d := openTestDeck(t, storage.NewMemoryAdapter())
	before := d.TaskCount()

	task := mustSubmit(t, d, 0, validTask("new work"))
	if task.ID == 0 {
		t.Error("Expected a fresh id")
	}
	if d.TaskCount() != before+1 {
		t.Errorf("Expected %d tasks, got %d", before+1, d.TaskCount())
	}
	if d.Tasks()[0].ID != task.ID {
		t.Error("Expected the new task first in the list")
	}
}

func TestSubmitTaskValidationBlocksCreate(t *testing.T) {
	d := openTestDeck(t, storage.NewMemoryAdapter())
	before := d.TaskCount()

	_, err := d.SubmitTask(0, map[string]any{"priority": "urgent"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError, got %v", err)
	}
	// title and status are required, priority value is orphaned
	if len(verr.Fields) != 3 {
		t.Errorf("Expected 3 field errors, got %v", verr.Fields)
	}
	if d.TaskCount() != before {
		t.Error("Failed validation must not change the store")
	}
}

func TestSubmitTaskPartialEdit(t *testing.T) {
	d := openTestDeck(t, storage.NewMemoryAdapter())
	task := mustSubmit(t, d, 0, validTask("draft"))

	// the patch omits the required title; the merged record still has it
	got := mustSubmit(t, d, task.ID, map[string]any{"status": models.StatusCompleted})
	if got.StringValue("title") != "draft" {
		t.Errorf("Expected merged title, got %q", got.StringValue("title"))
	}
	if got.StringValue("status") != models.StatusCompleted {
		t.Errorf("Expected patched status, got %q", got.StringValue("status"))
	}
}

func TestSubmitTaskEditValidatesMergedRecord(t *testing.T) {
	d := openTestDeck(t, storage.NewMemoryAdapter())
	task := mustSubmit(t, d, 0, validTask("draft"))

	// blanking the required title must fail even as a partial patch
	_, err := d.SubmitTask(task.ID, map[string]any{"title": ""})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError, got %v", err)
	}
}

func TestSubmitTaskUnknownID(t *testing.T) {
	d := openTestDeck(t, storage.NewMemoryAdapter())
	if _, err := d.SubmitTask(9999, map[string]any{"title": "x"}); !errors.Is(err, models.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	d := openTestDeck(t, storage.NewMemoryAdapter())
	task := mustSubmit(t, d, 0, validTask("doomed"))

	if err := d.DeleteTask(task.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if _, err := d.Task(task.ID); !errors.Is(err, models.ErrTaskNotFound) {
		t.Errorf("Expected task gone, got %v", err)
	}
}

// ============================================================================
// FIELD MANAGEMENT
// ============================================================================

func TestRemoveFieldKeepsDanglingValues(t *testing.T) {
	d := openTestDeck(t, storage.NewMemoryAdapter())
	if _, err := d.AddField(schema.NewColumn{Title: "Due Date", Type: models.ColumnText}); err != nil {
		t.Fatalf("AddField failed: %v", err)
	}
	values := validTask("dated")
	values["due_date"] = "2026-09-01"
	task := mustSubmit(t, d, 0, values)

	if err := d.RemoveField("due_date"); err != nil {
		t.Fatalf("RemoveField failed: %v", err)
	}

	// the record keeps its value; only the schema forgot the column
	got, _ := d.Task(task.ID)
	if got.StringValue("due_date") != "2026-09-01" {
		t.Errorf("Expected dangling value preserved, got %q", got.StringValue("due_date"))
	}
	if _, err := d.Column("due_date"); !errors.Is(err, models.ErrColumnNotFound) {
		t.Errorf("Expected column removed, got %v", err)
	}

	// and the record still validates: dangling keys are ignored
	if _, err := d.SubmitTask(task.ID, map[string]any{"title": "still dated"}); err != nil {
		t.Errorf("Edit after column removal failed: %v", err)
	}
}

func TestAddFieldPersistsOnlyCustoms(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	d := openTestDeck(t, adapter)
	if _, err := d.AddField(schema.NewColumn{Title: "Due Date", Type: models.ColumnText}); err != nil {
		t.Fatalf("AddField failed: %v", err)
	}

	raw, ok, err := adapter.Read(storage.KeyCustomColumns)
	if err != nil || !ok {
		t.Fatalf("Expected custom columns written, ok=%v err=%v", ok, err)
	}
	var persisted []*models.Column
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatalf("Persisted columns not valid JSON: %v", err)
	}
	if len(persisted) != 1 || persisted[0].Key != "due_date" {
		t.Errorf("Expected just the custom column persisted, got %v", persisted)
	}
}

// ============================================================================
// BEST-EFFORT PERSISTENCE
// ============================================================================

func TestPersistFailureKeepsInMemoryState(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	d := openTestDeck(t, adapter)
	adapter.FailWrites(storage.ErrQuotaExceeded)

	task, err := d.SubmitTask(0, validTask("unsaved"))
	var perr *PersistError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected *PersistError, got %v", err)
	}
	if !errors.Is(err, storage.ErrQuotaExceeded) {
		t.Errorf("Expected the adapter error wrapped, got %v", err)
	}

	// the task is live for this session despite the failed write
	if task == nil {
		t.Fatal("Expected the created task returned alongside the error")
	}
	if _, err := d.Task(task.ID); err != nil {
		t.Errorf("Expected task applied in memory, got %v", err)
	}
}
