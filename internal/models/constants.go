package models

// Built-in column keys. These three columns ship with every deck, always
// precede custom columns in display order, and are protected from removal.
const (
	KeyTitle    = "title"
	KeyPriority = "priority"
	KeyStatus   = "status"
)

// Status values.
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Priority values.
const (
	PriorityNone   = "none"
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// PriorityOptions is the declared option order for the priority column, which
// is also its sort order.
var PriorityOptions = []SelectOption{
	{Label: "None", Value: PriorityNone},
	{Label: "Low", Value: PriorityLow},
	{Label: "Medium", Value: PriorityMedium},
	{Label: "High", Value: PriorityHigh},
}

// StatusOptions is the declared option order for the status column.
var StatusOptions = []SelectOption{
	{Label: "Not Started", Value: StatusNotStarted},
	{Label: "In Progress", Value: StatusInProgress},
	{Label: "Completed", Value: StatusCompleted},
}

// BuiltinColumns returns fresh copies of the three built-in columns in their
// fixed display order.
func BuiltinColumns() []*Column {
	return []*Column{
		{Key: KeyTitle, Title: "Title", Type: ColumnText, Required: true},
		{Key: KeyPriority, Title: "Priority", Type: ColumnSelect, Options: append([]SelectOption(nil), PriorityOptions...)},
		{Key: KeyStatus, Title: "Status", Type: ColumnSelect, Required: true, Options: append([]SelectOption(nil), StatusOptions...)},
	}
}
