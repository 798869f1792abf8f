package inspector

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/numfield/internal/ui"
)

// Styles holds the lipgloss styles of the inspector panel, built from the
// active ui theme.
type Styles struct {
	Title        lipgloss.Style
	Panel        lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Value        lipgloss.Style
	Abbrev       lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	Help         lipgloss.Style
}

// DefaultStyles builds the inspector styles from the current ui theme.
func DefaultStyles() Styles {
	t := ui.GetCurrentTUITheme()

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		Label: lipgloss.NewStyle().
			Foreground(t.Dim),

		LabelFocused: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),

		Value: lipgloss.NewStyle().
			Foreground(t.Text),

		Abbrev: lipgloss.NewStyle().
			Foreground(t.Dim),

		Input: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Bg),

		InputFocused: lipgloss.NewStyle().
			Foreground(t.Warning).
			Bold(true),

		Status: lipgloss.NewStyle().
			Foreground(t.Success),

		StatusError: lipgloss.NewStyle().
			Foreground(t.Error),

		Help: lipgloss.NewStyle().
			Foreground(t.Dim),
	}
}
