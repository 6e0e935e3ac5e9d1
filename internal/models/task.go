package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Placeholder is rendered for absent or unresolvable field values.
const Placeholder = "-"

// Task is one row of the table. Its shape is driven by the schema rather than
// fixed at compile time: Fields maps column keys to values, string for
// text/select columns and numeric for number columns. A task may lack keys
// for columns added after it was created, and may keep dangling keys for
// columns that were removed since.
type Task struct {
	ID     int
	Fields map[string]any
}

// Value returns the task's value for a column key, or nil when absent.
func (t *Task) Value(key string) any {
	if t.Fields == nil {
		return nil
	}
	return t.Fields[key]
}

// StringValue returns the task's value for key coerced to a string, empty
// when absent. This is the coercion the query pipeline filters and sorts on.
func (t *Task) StringValue(key string) string {
	return FieldString(t.Value(key))
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	fields := make(map[string]any, len(t.Fields))
	for k, v := range t.Fields {
		fields[k] = v
	}
	return &Task{ID: t.ID, Fields: fields}
}

// FieldString coerces an arbitrary field value to its display/compare string.
// Numbers render without a trailing ".0"; nil renders empty. Malformed values
// never fail, they fall through to fmt.
func FieldString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// MarshalJSON flattens the task to the persisted row shape: one object with
// "id" plus one member per field key.
func (t *Task) MarshalJSON() ([]byte, error) {
	row := make(map[string]any, len(t.Fields)+1)
	for k, v := range t.Fields {
		row[k] = v
	}
	row["id"] = t.ID
	return json.Marshal(row)
}

// UnmarshalJSON reads the flat row shape back, splitting "id" from the
// schema-driven fields.
func (t *Task) UnmarshalJSON(data []byte) error {
	var row map[string]any
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	if id, ok := row["id"].(float64); ok {
		t.ID = int(id)
	}
	delete(row, "id")
	t.Fields = row
	return nil
}
