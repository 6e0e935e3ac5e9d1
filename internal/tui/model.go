package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/deck"
	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/query"
	"github.com/taskdeck/taskdeck/internal/tui/huhforms"
)

// mode is the interaction mode of the table view.
type mode int

const (
	modeNormal mode = iota
	modeFilter
	modeTaskForm
	modeFieldForm
	modeConfirmTask
	modeConfirmField
)

// Model is the bubbletea model of the table view.
type Model struct {
	deck   *deck.Deck
	styles Styles
	keys   KeyMap
	help   help.Model

	state query.State
	mode  mode

	width  int
	height int

	colIdx int // selected column, index into Columns()
	rowIdx int // selected row within the current page

	filterInput textinput.Model

	taskForm      *huhforms.TaskForm
	fieldForm     *huhforms.FieldForm
	editingTaskID int    // 0 while creating
	editingField  string // empty while creating

	confirmTaskID   int
	confirmFieldKey string

	notice    string
	noticeErr bool
}

// NewModel builds the initial model. Query state starts at the defaults every
// mount: no filters, no sort, page 1 at the configured size.
func NewModel(d *deck.Deck, cfg *config.Config) Model {
	input := textinput.New()
	input.Placeholder = "type to filter"
	input.CharLimit = 64

	state := query.NewState()
	state.SetPageSize(cfg.PageSize)

	return Model{
		deck:        d,
		styles:      NewStyles(cfg.Accent),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		state:       state,
		filterInput: input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// columns returns the current schema snapshot.
func (m *Model) columns() []*models.Column {
	return m.deck.Columns()
}

// page runs the query pipeline for the current state, clamping the page and
// row cursor against the result.
func (m *Model) page() ([]*models.Column, query.Result) {
	columns := m.columns()
	result := m.state.Run(m.deck.Tasks(), columns)
	m.state.Clamp(result.TotalPages)
	result = m.state.Run(m.deck.Tasks(), columns)

	if m.rowIdx >= len(result.Tasks) {
		m.rowIdx = len(result.Tasks) - 1
	}
	if m.rowIdx < 0 {
		m.rowIdx = 0
	}
	if m.colIdx >= len(columns) {
		m.colIdx = len(columns) - 1
	}
	if m.colIdx < 0 {
		m.colIdx = 0
	}
	return columns, result
}

// selectedTask returns the task under the cursor, nil when the page is empty.
func (m *Model) selectedTask() *models.Task {
	_, result := m.page()
	if len(result.Tasks) == 0 {
		return nil
	}
	return result.Tasks[m.rowIdx]
}

// selectedColumn returns the column the cursor is on.
func (m *Model) selectedColumn() *models.Column {
	columns, _ := m.page()
	if len(columns) == 0 {
		return nil
	}
	return columns[m.colIdx]
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}
