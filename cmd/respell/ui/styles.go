package ui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles the player renders with.
type Styles struct {
	Letter      lipgloss.Style
	Deleting    lipgloss.Style
	Inserted    lipgloss.Style
	Mover       lipgloss.Style
	Highlighted lipgloss.Style
	Placeholder lipgloss.Style
	PhaseLabel  lipgloss.Style
	Word        lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the player's standard look.
func DefaultStyles() Styles {
	return Styles{
		Letter:      lipgloss.NewStyle(),
		Deleting:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Strikethrough(true),
		Inserted:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Mover:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Highlighted: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		PhaseLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Word:        lipgloss.NewStyle().Padding(1, 2),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
