package prompt

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the prompts.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
}

// Styles holds the lipgloss styles used by the prompt views.
type Styles struct {
	Label    lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

// defaultStyles returns the default prompt styles.
func defaultStyles() Styles {
	return Styles{
		Label:    lipgloss.NewStyle().Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(Colors.Primary),
		Selected: lipgloss.NewStyle().Foreground(Colors.Success),
		Error:    lipgloss.NewStyle().Foreground(Colors.Error),
		Help:     lipgloss.NewStyle().Foreground(Colors.Muted),
	}
}
