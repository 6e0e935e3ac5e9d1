package models

// ColumnType identifies how a column's values are entered, validated and
// compared. The string values are stable: they appear in persisted schemas.
type ColumnType string

const (
	ColumnText   ColumnType = "text"
	ColumnNumber ColumnType = "number"
	ColumnSelect ColumnType = "select"
)

// Valid reports whether t is one of the known column types.
func (t ColumnType) Valid() bool {
	switch t {
	case ColumnText, ColumnNumber, ColumnSelect:
		return true
	}
	return false
}

// SelectOption is one allowed value of a select column. Value is what gets
// stored on records; Label is what gets displayed.
type SelectOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Column describes one field of the task schema.
// Built-in columns ship with the application; custom columns are added by the
// user at runtime. Key and Type are immutable once the column exists.
type Column struct {
	Key      string         `json:"key"`
	Title    string         `json:"title"`
	Type     ColumnType     `json:"type"`
	Required bool           `json:"required,omitempty"`
	Options  []SelectOption `json:"options,omitempty"`
	Custom   bool           `json:"isCustom,omitempty"`
}

// OptionIndex returns the position of value in the column's options, or -1 if
// the value is not (or no longer) a declared option. Option declaration order
// defines sort order for select columns.
func (c *Column) OptionIndex(value string) int {
	for i, opt := range c.Options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

// OptionLabel resolves a stored select value to its display label.
// Values orphaned by option edits resolve to the placeholder.
func (c *Column) OptionLabel(value string) string {
	for _, opt := range c.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return Placeholder
}

// Clone returns a deep copy of the column, so callers can hand columns across
// API boundaries without sharing the options slice.
func (c *Column) Clone() *Column {
	out := *c
	if c.Options != nil {
		out.Options = make([]SelectOption, len(c.Options))
		copy(out.Options, c.Options)
	}
	return &out
}
