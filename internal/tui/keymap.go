package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the table view.
type KeyMap struct {
	Quit        key.Binding
	Help        key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Sort        key.Binding
	ClearSort   key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
	NewTask     key.Binding
	EditTask    key.Binding
	DeleteTask  key.Binding
	NewField    key.Binding
	EditField   key.Binding
	DeleteField key.Binding
	NextPage    key.Binding
	PrevPage    key.Binding
	PageSize    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "row up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "row down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column left")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column right")),
		Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort column")),
		ClearSort:   key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "clear sort")),
		Filter:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter column")),
		ClearFilter: key.NewBinding(key.WithKeys("\\"), key.WithHelp(`\`, "clear filters")),
		NewTask:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new task")),
		EditTask:    key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter/e", "edit task")),
		DeleteTask:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete task")),
		NewField:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "new field")),
		EditField:   key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "edit field")),
		DeleteField: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "delete field")),
		NextPage:    key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next page")),
		PrevPage:    key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev page")),
		PageSize:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "cycle page size")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewTask, k.EditTask, k.Filter, k.Sort, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Sort, k.ClearSort, k.Filter, k.ClearFilter},
		{k.NewTask, k.EditTask, k.DeleteTask},
		{k.NewField, k.EditField, k.DeleteField},
		{k.PrevPage, k.NextPage, k.PageSize, k.Quit},
	}
}
