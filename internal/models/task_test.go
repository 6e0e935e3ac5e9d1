package models

import (
	"encoding/json"
	"strings"
	"testing"
)

// ============================================================================
// FIELD COERCION
// ============================================================================

func TestFieldString(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{nil, ""},
		{"plain", "plain"},
		{42, "42"},
		{int64(42), "42"},
		{float64(42), "42"}, // JSON numbers decode as float64, no ".0" suffix
		{3.5, "3.5"},
		{true, "true"},
	}
	for _, tc := range cases {
		if got := FieldString(tc.value); got != tc.want {
			t.Errorf("FieldString(%#v) = %q, expected %q", tc.value, got, tc.want)
		}
	}
}

func TestStringValueAbsentIsEmpty(t *testing.T) {
	task := &Task{ID: 1, Fields: map[string]any{"title": "has"}}
	if got := task.StringValue("missing"); got != "" {
		t.Errorf("Expected empty string for absent key, got %q", got)
	}

	var bare Task
	if got := bare.StringValue("title"); got != "" {
		t.Errorf("Expected empty string on nil fields, got %q", got)
	}
}

// ============================================================================
// ROW SHAPE JSON
// ============================================================================

func TestTaskMarshalFlattens(t *testing.T) {
	task := &Task{ID: 7, Fields: map[string]any{"title": "flat", "estimate": 3}}

	raw, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(raw), "Fields") {
		t.Errorf("Expected flat row shape, got %s", raw)
	}

	var row map[string]any
	if err := json.Unmarshal(raw, &row); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if row["id"] != float64(7) || row["title"] != "flat" {
		t.Errorf("Unexpected row %v", row)
	}
}

func TestTaskUnmarshalSplitsID(t *testing.T) {
	var task Task
	if err := json.Unmarshal([]byte(`{"id":3,"title":"loaded","priority":"high"}`), &task); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if task.ID != 3 {
		t.Errorf("Expected id 3, got %d", task.ID)
	}
	if _, ok := task.Fields["id"]; ok {
		t.Error("id must not remain in the field map")
	}
	if task.StringValue("priority") != "high" {
		t.Errorf("Expected field values loaded, got %v", task.Fields)
	}
}

func TestTaskCloneIsIndependent(t *testing.T) {
	task := &Task{ID: 1, Fields: map[string]any{"title": "original"}}
	clone := task.Clone()

	clone.Fields["title"] = "changed"
	if task.StringValue("title") != "original" {
		t.Error("Clone shares the field map with its source")
	}
}

// ============================================================================
// COLUMN OPTIONS
// ============================================================================

func TestOptionIndex(t *testing.T) {
	col := &Column{Key: "priority", Type: ColumnSelect, Options: PriorityOptions}

	if got := col.OptionIndex(PriorityNone); got != 0 {
		t.Errorf("Expected index 0, got %d", got)
	}
	if got := col.OptionIndex(PriorityHigh); got != 3 {
		t.Errorf("Expected index 3, got %d", got)
	}
	if got := col.OptionIndex("orphaned"); got != -1 {
		t.Errorf("Expected -1 for unknown value, got %d", got)
	}
}

func TestOptionLabel(t *testing.T) {
	col := &Column{Key: "status", Type: ColumnSelect, Options: StatusOptions}

	if got := col.OptionLabel(StatusInProgress); got != "In Progress" {
		t.Errorf("Expected label, got %q", got)
	}
	if got := col.OptionLabel("orphaned"); got != Placeholder {
		t.Errorf("Expected placeholder for orphaned value, got %q", got)
	}
}

func TestColumnCloneIsIndependent(t *testing.T) {
	col := &Column{Key: "priority", Type: ColumnSelect, Options: []SelectOption{{Label: "Low", Value: "low"}}}
	clone := col.Clone()

	clone.Options[0].Value = "changed"
	if col.Options[0].Value != "low" {
		t.Error("Clone shares the options slice with its source")
	}
}
