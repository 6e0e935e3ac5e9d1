package huhforms

import (
	"testing"

	"github.com/taskdeck/taskdeck/internal/models"
)

// ============================================================================
// TASK FORM
// ============================================================================

func TestTaskFormDefaultsForCreate(t *testing.T) {
	columns := models.BuiltinColumns()
	f := NewTaskForm(columns, nil)

	if got := *f.values["title"]; got != "" {
		t.Errorf("Expected empty title default, got %q", got)
	}
	// selects start on their first declared option
	if got := *f.values["priority"]; got != models.PriorityNone {
		t.Errorf("Expected first priority option, got %q", got)
	}
	if got := *f.values["status"]; got != models.StatusNotStarted {
		t.Errorf("Expected first status option, got %q", got)
	}
}

func TestTaskFormPrefillsForEdit(t *testing.T) {
	columns := models.BuiltinColumns()
	task := &models.Task{ID: 3, Fields: map[string]any{
		"title":    "existing",
		"priority": models.PriorityHigh,
		"status":   models.StatusInProgress,
	}}

	f := NewTaskForm(columns, task)
	if got := *f.values["title"]; got != "existing" {
		t.Errorf("Expected prefilled title, got %q", got)
	}
	if got := *f.values["priority"]; got != models.PriorityHigh {
		t.Errorf("Expected prefilled priority, got %q", got)
	}
}

func TestTaskFormValuesCoerceNumbers(t *testing.T) {
	columns := append(models.BuiltinColumns(),
		&models.Column{Key: "estimate", Title: "Estimate", Type: models.ColumnNumber, Custom: true})
	f := NewTaskForm(columns, nil)
	*f.values["title"] = "  spaced  "
	*f.values["estimate"] = "7"

	values := f.Values()
	if values["title"] != "spaced" {
		t.Errorf("Expected trimmed text, got %#v", values["title"])
	}
	if values["estimate"] != 7 {
		t.Errorf("Expected int for number column, got %#v", values["estimate"])
	}
}

func TestTaskFormValuesSkipEmptyNumbers(t *testing.T) {
	columns := []*models.Column{{Key: "estimate", Title: "Estimate", Type: models.ColumnNumber}}
	f := NewTaskForm(columns, nil)
	*f.values["estimate"] = ""

	if _, ok := f.Values()["estimate"]; ok {
		t.Error("Empty optional number must stay absent from the record")
	}
}

// ============================================================================
// FIELD FORM
// ============================================================================

func TestFieldFormNewColumn(t *testing.T) {
	f := NewFieldForm(nil)
	f.title = " Mood "
	f.colType = string(models.ColumnSelect)
	f.required = true
	f.options = "good:Good, bad"

	def := f.NewColumn()
	if def.Title != "Mood" {
		t.Errorf("Expected trimmed title, got %q", def.Title)
	}
	if def.Type != models.ColumnSelect || !def.Required {
		t.Errorf("Unexpected column def %+v", def)
	}
	if len(def.Options) != 2 {
		t.Fatalf("Expected 2 options, got %v", def.Options)
	}
	if def.Options[0].Label != "Good" || def.Options[1].Label != "bad" {
		t.Errorf("Bare values must label themselves, got %v", def.Options)
	}
}

func TestFieldFormEditPrefillsAndPatches(t *testing.T) {
	col := &models.Column{
		Key:      "mood",
		Title:    "Mood",
		Type:     models.ColumnSelect,
		Required: true,
		Options:  []models.SelectOption{{Label: "Good", Value: "good"}},
		Custom:   true,
	}

	f := NewFieldForm(col)
	if !f.isEdit {
		t.Fatal("Expected edit mode for an existing column")
	}
	if f.options != "good:Good" {
		t.Errorf("Expected options formatted back, got %q", f.options)
	}

	f.title = "Vibe"
	f.options = "great:Great"
	patch := f.Patch()
	if *patch.Title != "Vibe" || !*patch.Required {
		t.Errorf("Unexpected patch %+v", patch)
	}
	if len(patch.Options) != 1 || patch.Options[0].Value != "great" {
		t.Errorf("Expected replaced options, got %v", patch.Options)
	}
}

func TestFieldFormPatchOmitsOptionsForNonSelect(t *testing.T) {
	col := &models.Column{Key: "notes", Title: "Notes", Type: models.ColumnText, Custom: true}

	f := NewFieldForm(col)
	if patch := f.Patch(); patch.Options != nil {
		t.Errorf("Non-select patch must not carry options, got %v", patch.Options)
	}
}
