package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/taskdeck/taskdeck/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs a successful operation result.
func (f *OutputFormatter) Success(data any) error {
	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}
	if f.Quiet {
		if task, ok := data.(*models.Task); ok {
			fmt.Printf("%d\n", task.ID)
			return nil
		}
		if col, ok := data.(*models.Column); ok {
			fmt.Printf("%s\n", col.Key)
			return nil
		}
		return nil
	}
	fmt.Printf("%+v\n", data)
	return nil
}

// Error outputs error information.
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion.
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "Hint: %s\n", suggestion)
	}
	return nil
}

var headerStyle = lipgloss.NewStyle().Bold(true)

// CellValue resolves what a task shows in a column: select values map to
// their option label, everything else to its string coercion, absent or
// orphaned values to the placeholder.
func CellValue(col *models.Column, task *models.Task) string {
	if col.Type == models.ColumnSelect {
		return col.OptionLabel(task.StringValue(col.Key))
	}
	s := task.StringValue(col.Key)
	if s == "" {
		return models.Placeholder
	}
	return s
}

// RenderTaskTable writes a padded text table of the tasks under the current
// schema, one column per registered column plus the id.
func RenderTaskTable(sb *strings.Builder, columns []*models.Column, tasks []*models.Task) {
	headers := []string{"ID"}
	for _, col := range columns {
		headers = append(headers, col.Title)
	}

	rows := make([][]string, 0, len(tasks))
	for _, task := range tasks {
		row := []string{fmt.Sprintf("%d", task.ID)}
		for _, col := range columns {
			row = append(row, CellValue(col, task))
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for i, h := range headers {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(headerStyle.Render(pad(h, widths[i])))
	}
	sb.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(pad(cell, widths[i]))
		}
		sb.WriteString("\n")
	}
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
