// Package theme centralizes Lip Gloss styles for the task list UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme groups the styles used by the list, the input form and the footer.
type Theme struct {
	Title       lipgloss.Style
	FilterOn    lipgloss.Style
	FilterOff   lipgloss.Style
	Cursor      lipgloss.Style
	Text        lipgloss.Style
	DoneText    lipgloss.Style
	Overdue     lipgloss.Style
	DueSoon     lipgloss.Style
	DueLater    lipgloss.Style
	Empty       lipgloss.Style
	Label       lipgloss.Style
	FocusLabel  lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	focus := lipgloss.Color("212")
	faint := lipgloss.Color("244")

	return Theme{
		Title:       lipgloss.NewStyle().Bold(true).Underline(true),
		FilterOn:    lipgloss.NewStyle().Foreground(focus).Bold(true),
		FilterOff:   lipgloss.NewStyle().Foreground(faint),
		Cursor:      lipgloss.NewStyle().Foreground(focus).Bold(true),
		Text:        lipgloss.NewStyle(),
		DoneText:    lipgloss.NewStyle().Foreground(faint).Strikethrough(true),
		Overdue:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		DueSoon:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		DueLater:    lipgloss.NewStyle().Foreground(faint),
		Empty:       lipgloss.NewStyle().Foreground(faint).Italic(true),
		Label:       lipgloss.NewStyle().Foreground(faint),
		FocusLabel:  lipgloss.NewStyle().Foreground(focus),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
