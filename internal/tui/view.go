package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/query"
)

const maxCellWidth = 24

// View renders the table view, or the active form/confirmation on top of it.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.mode {
	case modeTaskForm:
		return m.centerBox(m.styles.FormBox.Render(m.taskForm.Form.View()))
	case modeFieldForm:
		return m.centerBox(m.styles.FormBox.Render(m.fieldForm.Form.View()))
	case modeConfirmTask:
		prompt := fmt.Sprintf("Delete task %d?\n\n[y] delete  [n] cancel", m.confirmTaskID)
		return m.centerBox(m.styles.ConfirmBox.Render(prompt))
	case modeConfirmField:
		prompt := fmt.Sprintf("Delete field %s?\n\nTask values stored under it are kept.\n\n[y] delete  [n] cancel", m.confirmFieldKey)
		return m.centerBox(m.styles.ConfirmBox.Render(prompt))
	}

	columns, result := m.page()

	var sb strings.Builder
	sb.WriteString(m.renderHeader(columns))
	sb.WriteString("\n")
	sb.WriteString(m.renderRows(columns, result))
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus(result))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m *Model) centerBox(box string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) renderHeader(columns []*models.Column) string {
	widths := m.columnWidths(columns)

	cells := make([]string, len(columns))
	for i, col := range columns {
		label := col.Title + sortMarker(m.state.Sort, col.Key)
		style := m.styles.Header
		if i == m.colIdx {
			style = m.styles.HeaderActive
		}
		cells[i] = style.Render(pad(truncate(label, widths[i]), widths[i]))
	}
	header := strings.Join(cells, "  ")

	filterLine := m.renderFilterLine(columns, widths)
	if filterLine == "" {
		return header
	}
	return header + "\n" + filterLine
}

func (m *Model) renderFilterLine(columns []*models.Column, widths []int) string {
	if m.mode == modeFilter {
		col := columns[m.colIdx]
		return m.styles.FilterActive.Render(fmt.Sprintf("filter %s: ", col.Title)) + m.filterInput.View()
	}

	any := false
	cells := make([]string, len(columns))
	for i, col := range columns {
		value := m.state.Filters[col.Key]
		if value != "" {
			any = true
			cells[i] = m.styles.FilterActive.Render(pad(truncate("/"+value, widths[i]), widths[i]))
		} else {
			cells[i] = pad("", widths[i])
		}
	}
	if !any {
		return ""
	}
	return strings.Join(cells, "  ")
}

func (m *Model) renderRows(columns []*models.Column, result query.Result) string {
	if len(result.Tasks) == 0 {
		return m.styles.Placeholder.Render("No tasks found")
	}

	widths := m.columnWidths(columns)
	lines := make([]string, len(result.Tasks))
	for r, task := range result.Tasks {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = pad(truncate(cellValue(col, task), widths[i]), widths[i])
		}
		line := strings.Join(cells, "  ")
		if r == m.rowIdx {
			line = m.styles.SelectedRow.Render(line)
		}
		lines[r] = line
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderStatus(result query.Result) string {
	parts := []string{
		fmt.Sprintf("%d tasks", m.deck.TaskCount()),
	}
	if result.TotalPages > 0 {
		parts = append(parts, fmt.Sprintf("page %d/%d", m.state.Page.Current, result.TotalPages))
	}
	parts = append(parts, fmt.Sprintf("size %d", m.state.Page.Size))
	if m.state.Sort.Key != "" {
		parts = append(parts, fmt.Sprintf("sort %s %s", m.state.Sort.Key, m.state.Sort.Direction))
	}
	status := m.styles.StatusBar.Render(strings.Join(parts, " · "))

	if m.notice != "" {
		style := m.styles.Notice
		if m.noticeErr {
			style = m.styles.ErrorNotice
		}
		status += "  " + style.Render(m.notice)
	}
	return status
}

// columnWidths sizes each column to its widest visible cell, capped.
func (m *Model) columnWidths(columns []*models.Column) []int {
	result := m.state.Run(m.deck.Tasks(), columns)

	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = runewidth.StringWidth(col.Title) + 2 // room for the sort marker
		for _, task := range result.Tasks {
			if l := runewidth.StringWidth(cellValue(col, task)); l > widths[i] {
				widths[i] = l
			}
		}
		if widths[i] > maxCellWidth {
			widths[i] = maxCellWidth
		}
	}
	return widths
}

// cellValue resolves the displayed value: option labels for selects, string
// coercion elsewhere, placeholder for absent or orphaned values.
func cellValue(col *models.Column, task *models.Task) string {
	if col.Type == models.ColumnSelect {
		return col.OptionLabel(task.StringValue(col.Key))
	}
	if s := task.StringValue(col.Key); s != "" {
		return s
	}
	return models.Placeholder
}

func sortMarker(srt query.Sort, key string) string {
	if srt.Key != key {
		return ""
	}
	if srt.Direction == query.SortDesc {
		return " ▼"
	}
	return " ▲"
}

// truncate and pad work on display width, never mid-rune: column titles and
// cell values are arbitrary user text.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
