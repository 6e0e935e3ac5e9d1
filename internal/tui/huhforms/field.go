package huhforms

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/schema"
)

// FieldForm is the form for adding or editing a column. Options are entered
// as a comma-separated list of value:label pairs.
type FieldForm struct {
	Form *huh.Form

	isEdit   bool
	title    string
	colType  string
	required bool
	options  string
	confirm  bool
}

// NewFieldForm builds the column form. A nil col means a new column; the
// type is then selectable. On edit the type is fixed, only title, required
// and options can change.
func NewFieldForm(col *models.Column) *FieldForm {
	f := &FieldForm{colType: string(models.ColumnText)}

	if col != nil {
		f.isEdit = true
		f.title = col.Title
		f.colType = string(col.Type)
		f.required = col.Required
		f.options = formatOptions(col.Options)
	}

	var fields []huh.Field
	fields = append(fields,
		huh.NewInput().
			Key("title").
			Title("Field Title").
			Placeholder("Enter field title").
			Value(&f.title).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("Field Title is required")
				}
				return nil
			}),
	)

	if !f.isEdit {
		fields = append(fields,
			huh.NewSelect[string]().
				Key("type").
				Title("Field Type").
				Options(
					huh.NewOption("Text", string(models.ColumnText)),
					huh.NewOption("Number", string(models.ColumnNumber)),
					huh.NewOption("Select", string(models.ColumnSelect)),
				).
				Value(&f.colType),
		)
	}

	fields = append(fields,
		huh.NewConfirm().
			Key("required").
			Title("Required field?").
			Affirmative("Yes").
			Negative("No").
			Value(&f.required),
		huh.NewInput().
			Key("options").
			Title("Options (select only)").
			Placeholder("low:Low, high:High").
			Description("Comma-separated value:label pairs").
			Value(&f.options),
		huh.NewConfirm().
			Key("confirm").
			Title("Save this field?").
			Affirmative("Save").
			Negative("Cancel").
			Value(&f.confirm),
	)

	f.Form = huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
	return f
}

// Confirmed reports whether the user chose to save.
func (f *FieldForm) Confirmed() bool { return f.confirm }

// NewColumn returns the form contents as an add request.
func (f *FieldForm) NewColumn() schema.NewColumn {
	return schema.NewColumn{
		Title:    strings.TrimSpace(f.title),
		Type:     models.ColumnType(f.colType),
		Required: f.required,
		Options:  parseOptions(f.options),
	}
}

// Patch returns the form contents as an update: title, required and options
// replaced wholesale, type untouched.
func (f *FieldForm) Patch() schema.Patch {
	title := strings.TrimSpace(f.title)
	required := f.required
	patch := schema.Patch{Title: &title, Required: &required}
	if models.ColumnType(f.colType) == models.ColumnSelect {
		patch.Options = parseOptions(f.options)
	}
	return patch
}

func parseOptions(spec string) []models.SelectOption {
	var out []models.SelectOption
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, label, found := strings.Cut(part, ":")
		value = strings.TrimSpace(value)
		label = strings.TrimSpace(label)
		if !found || label == "" {
			label = value
		}
		out = append(out, models.SelectOption{Value: value, Label: label})
	}
	return out
}

func formatOptions(options []models.SelectOption) string {
	parts := make([]string, len(options))
	for i, opt := range options {
		parts[i] = fmt.Sprintf("%s:%s", opt.Value, opt.Label)
	}
	return strings.Join(parts, ", ")
}
