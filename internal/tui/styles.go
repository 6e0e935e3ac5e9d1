package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the table view, built once from the
// configured accent color.
type Styles struct {
	Header       lipgloss.Style
	HeaderActive lipgloss.Style
	Cell         lipgloss.Style
	SelectedRow  lipgloss.Style
	FilterActive lipgloss.Style
	StatusBar    lipgloss.Style
	Notice       lipgloss.Style
	ErrorNotice  lipgloss.Style
	Placeholder  lipgloss.Style
	FormBox      lipgloss.Style
	ConfirmBox   lipgloss.Style
}

// NewStyles builds the style set for an accent color.
func NewStyles(accent string) Styles {
	color := lipgloss.Color(accent)
	return Styles{
		Header:       lipgloss.NewStyle().Bold(true),
		HeaderActive: lipgloss.NewStyle().Bold(true).Foreground(color).Underline(true),
		Cell:         lipgloss.NewStyle(),
		SelectedRow:  lipgloss.NewStyle().Reverse(true),
		FilterActive: lipgloss.NewStyle().Foreground(color).Italic(true),
		StatusBar:    lipgloss.NewStyle().Faint(true),
		Notice:       lipgloss.NewStyle().Foreground(color),
		ErrorNotice:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Placeholder:  lipgloss.NewStyle().Faint(true),
		FormBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color).
			Padding(1, 2),
		ConfirmBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(1, 2),
	}
}
