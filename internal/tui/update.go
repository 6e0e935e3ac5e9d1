package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/taskdeck/taskdeck/internal/deck"
	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/query"
	"github.com/taskdeck/taskdeck/internal/tui/huhforms"
)

// Update routes messages by interaction mode.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.help.Width = size.Width
	}

	switch m.mode {
	case modeFilter:
		return m.updateFilter(msg)
	case modeTaskForm, modeFieldForm:
		return m.updateForm(msg)
	case modeConfirmTask, modeConfirmField:
		return m.updateConfirm(msg)
	default:
		return m.updateNormal(msg)
	}
}

func (m Model) updateNormal(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.notice = ""

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Up):
		if m.rowIdx > 0 {
			m.rowIdx--
		}

	case key.Matches(keyMsg, m.keys.Down):
		_, result := m.page()
		if m.rowIdx < len(result.Tasks)-1 {
			m.rowIdx++
		}

	case key.Matches(keyMsg, m.keys.Left):
		if m.colIdx > 0 {
			m.colIdx--
		}

	case key.Matches(keyMsg, m.keys.Right):
		columns, _ := m.page()
		if m.colIdx < len(columns)-1 {
			m.colIdx++
		}

	case key.Matches(keyMsg, m.keys.Sort):
		if col := m.selectedColumn(); col != nil {
			m.state.CycleSort(col.Key)
		}

	case key.Matches(keyMsg, m.keys.ClearSort):
		m.state.ClearSort()

	case key.Matches(keyMsg, m.keys.Filter):
		col := m.selectedColumn()
		if col == nil {
			break
		}
		m.filterInput.SetValue(m.state.Filters[col.Key])
		m.filterInput.Focus()
		m.mode = modeFilter

	case key.Matches(keyMsg, m.keys.ClearFilter):
		m.state.Filters = map[string]string{}
		m.state.Page.Current = 1

	case key.Matches(keyMsg, m.keys.NextPage):
		_, result := m.page()
		if m.state.Page.Current < result.TotalPages {
			m.state.SetPage(m.state.Page.Current + 1)
			m.rowIdx = 0
		}

	case key.Matches(keyMsg, m.keys.PrevPage):
		if m.state.Page.Current > 1 {
			m.state.SetPage(m.state.Page.Current - 1)
			m.rowIdx = 0
		}

	case key.Matches(keyMsg, m.keys.PageSize):
		m.state.SetPageSize(nextPageSize(m.state.Page.Size))

	case key.Matches(keyMsg, m.keys.NewTask):
		m.editingTaskID = 0
		m.taskForm = huhforms.NewTaskForm(m.columns(), nil)
		m.mode = modeTaskForm
		return m, m.taskForm.Form.Init()

	case key.Matches(keyMsg, m.keys.EditTask):
		task := m.selectedTask()
		if task == nil {
			break
		}
		m.editingTaskID = task.ID
		m.taskForm = huhforms.NewTaskForm(m.columns(), task)
		m.mode = modeTaskForm
		return m, m.taskForm.Form.Init()

	case key.Matches(keyMsg, m.keys.DeleteTask):
		task := m.selectedTask()
		if task == nil {
			break
		}
		m.confirmTaskID = task.ID
		m.mode = modeConfirmTask

	case key.Matches(keyMsg, m.keys.NewField):
		m.editingField = ""
		m.fieldForm = huhforms.NewFieldForm(nil)
		m.mode = modeFieldForm
		return m, m.fieldForm.Form.Init()

	case key.Matches(keyMsg, m.keys.EditField):
		col := m.selectedColumn()
		if col == nil {
			break
		}
		m.editingField = col.Key
		m.fieldForm = huhforms.NewFieldForm(col)
		m.mode = modeFieldForm
		return m, m.fieldForm.Form.Init()

	case key.Matches(keyMsg, m.keys.DeleteField):
		col := m.selectedColumn()
		if col == nil {
			break
		}
		if !col.Custom {
			m.setNotice("built-in columns cannot be removed", true)
			break
		}
		m.confirmFieldKey = col.Key
		m.mode = modeConfirmField
	}

	return m, nil
}

func (m Model) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if col := m.selectedColumn(); col != nil {
				m.state.SetFilter(col.Key, m.filterInput.Value())
				m.rowIdx = 0
			}
			m.filterInput.Blur()
			m.mode = modeNormal
			return m, nil
		case "esc":
			m.filterInput.Blur()
			m.mode = modeNormal
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var form *huh.Form
	if m.mode == modeTaskForm {
		form = m.taskForm.Form
	} else {
		form = m.fieldForm.Form
	}

	next, cmd := form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		if m.mode == modeTaskForm {
			m.taskForm.Form = f
		} else {
			m.fieldForm.Form = f
		}
		form = f
	}

	switch form.State {
	case huh.StateCompleted:
		if m.mode == modeTaskForm {
			m.submitTask()
		} else {
			m.submitField()
		}
		m.mode = modeNormal
		return m, nil
	case huh.StateAborted:
		m.mode = modeNormal
		return m, nil
	}

	return m, cmd
}

func (m *Model) submitTask() {
	if !m.taskForm.Confirmed() {
		return
	}
	task, err := m.deck.SubmitTask(m.editingTaskID, m.taskForm.Values())
	m.noteTaskSubmit(task, err)
}

// noteTaskSubmit sets the status notice for a task submit. On a persistence
// failure the mutation is live in memory but was not written through; the
// warning must stay visible, so the success notice is skipped.
func (m *Model) noteTaskSubmit(task *models.Task, err error) {
	if err != nil {
		m.reportError(err)
		if task != nil && m.editingTaskID == 0 {
			m.rowIdx = 0
		}
		return
	}
	if m.editingTaskID == 0 {
		m.setNotice(fmt.Sprintf("created task %d", task.ID), false)
		// new tasks land at the top of the unsorted view
		m.rowIdx = 0
	} else {
		m.setNotice(fmt.Sprintf("saved task %d", task.ID), false)
	}
}

func (m *Model) submitField() {
	if !m.fieldForm.Confirmed() {
		return
	}
	if m.editingField == "" {
		col, err := m.deck.AddField(m.fieldForm.NewColumn())
		m.noteFieldSubmit(col, err, "added")
		return
	}
	col, err := m.deck.UpdateField(m.editingField, m.fieldForm.Patch())
	m.noteFieldSubmit(col, err, "saved")
}

// noteFieldSubmit mirrors noteTaskSubmit for column mutations: any error,
// persistence included, keeps its notice.
func (m *Model) noteFieldSubmit(col *models.Column, err error, verb string) {
	if err != nil {
		m.reportError(err)
		return
	}
	m.setNotice(fmt.Sprintf("%s field %q", verb, col.Title), false)
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "enter":
		if m.mode == modeConfirmTask {
			if err := m.deck.DeleteTask(m.confirmTaskID); err != nil {
				m.reportError(err)
			} else {
				m.setNotice(fmt.Sprintf("deleted task %d", m.confirmTaskID), false)
			}
		} else {
			if err := m.deck.RemoveField(m.confirmFieldKey); err != nil {
				m.reportError(err)
			} else {
				m.setNotice(fmt.Sprintf("removed field %s", m.confirmFieldKey), false)
			}
		}
		m.mode = modeNormal
	case "n", "esc", "q":
		m.mode = modeNormal
	}
	return m, nil
}

// reportError turns a deck error into a notice. Persistence failures are
// warnings: the mutation stuck in memory and the session carries on.
func (m *Model) reportError(err error) {
	var perr *deck.PersistError
	if errors.As(err, &perr) {
		m.setNotice(perr.Error(), true)
		return
	}
	m.setNotice(err.Error(), true)
}

func nextPageSize(current int) int {
	for i, size := range query.PageSizes {
		if size == current {
			return query.PageSizes[(i+1)%len(query.PageSizes)]
		}
	}
	return query.DefaultPageSize
}
