// Package huhforms builds the huh forms the TUI shows for task and field
// editing. Task forms are constructed from the live schema, one huh field per
// column, with validation derived from the column's rule.
package huhforms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/taskdeck/taskdeck/internal/models"
)

// TaskForm wraps a schema-driven huh form plus the value holders it writes
// into.
type TaskForm struct {
	Form    *huh.Form
	columns []*models.Column
	values  map[string]*string
	confirm bool
}

// NewTaskForm builds a form with one field per column of the current schema.
// For an edit, task prefills the holders; for a create, text fields start
// empty, selects on their first option and numbers at 0, like the original
// form defaults.
func NewTaskForm(columns []*models.Column, task *models.Task) *TaskForm {
	f := &TaskForm{
		columns: columns,
		values:  make(map[string]*string, len(columns)),
	}

	var fields []huh.Field
	for _, col := range columns {
		value := new(string)
		f.values[col.Key] = value
		*value = defaultValue(col, task)

		switch col.Type {
		case models.ColumnSelect:
			options := make([]huh.Option[string], len(col.Options))
			for i, opt := range col.Options {
				options[i] = huh.NewOption(opt.Label, opt.Value)
			}
			fields = append(fields,
				huh.NewSelect[string]().
					Key(col.Key).
					Title(col.Title).
					Options(options...).
					Value(value),
			)

		case models.ColumnNumber:
			fields = append(fields, numberInput(col, value))

		default:
			fields = append(fields, textInput(col, value))
		}
	}

	fields = append(fields,
		huh.NewConfirm().
			Key("confirm").
			Title("Save this task?").
			Affirmative("Save").
			Negative("Cancel").
			Value(&f.confirm),
	)

	f.Form = huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
	return f
}

func textInput(col *models.Column, value *string) huh.Field {
	input := huh.NewInput().
		Key(col.Key).
		Title(col.Title).
		Placeholder(fmt.Sprintf("Enter %s", col.Title)).
		Value(value)
	if col.Required {
		title := col.Title
		input = input.Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%q is required", title)
			}
			return nil
		})
	}
	return input
}

func numberInput(col *models.Column, value *string) huh.Field {
	title := col.Title
	required := col.Required
	return huh.NewInput().
		Key(col.Key).
		Title(col.Title).
		Placeholder(fmt.Sprintf("Enter %s", col.Title)).
		Value(value).
		Validate(func(s string) error {
			s = strings.TrimSpace(s)
			if s == "" {
				if required {
					return fmt.Errorf("%q is required", title)
				}
				return nil
			}
			if _, err := strconv.Atoi(s); err != nil {
				return fmt.Errorf("%q must be a whole number", title)
			}
			return nil
		})
}

// Confirmed reports whether the user chose to save.
func (f *TaskForm) Confirmed() bool { return f.confirm }

// Values converts the form holders back into record field values: ints for
// number columns, strings otherwise. Empty optional numbers stay absent.
func (f *TaskForm) Values() map[string]any {
	out := make(map[string]any, len(f.columns))
	for _, col := range f.columns {
		raw := strings.TrimSpace(*f.values[col.Key])
		if col.Type == models.ColumnNumber {
			if raw == "" {
				continue
			}
			if n, err := strconv.Atoi(raw); err == nil {
				out[col.Key] = n
			}
			continue
		}
		out[col.Key] = raw
	}
	return out
}

func defaultValue(col *models.Column, task *models.Task) string {
	if task != nil {
		if v := task.StringValue(col.Key); v != "" {
			return v
		}
	}
	switch col.Type {
	case models.ColumnSelect:
		if len(col.Options) > 0 {
			return col.Options[0].Value
		}
		return ""
	case models.ColumnNumber:
		if task != nil {
			return ""
		}
		return "0"
	default:
		return ""
	}
}
