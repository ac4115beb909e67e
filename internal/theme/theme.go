package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title        *lipgloss.Style
	Cell         *lipgloss.Style
	EmptyCell    *lipgloss.Style
	SelectedCell *lipgloss.Style
	Amount       *lipgloss.Style
	DetailTitle  *lipgloss.Style
	DetailBody   *lipgloss.Style
	Error        *lipgloss.Style
	Info         *lipgloss.Style
	Notice       *lipgloss.Style
	Header       *lipgloss.Style
	Footer       *lipgloss.Style
	FilterPrompt *lipgloss.Style
	Roster       *lipgloss.Style
	RosterHeader *lipgloss.Style
	RosterActive *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Cell: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
	),
	EmptyCell: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Background(lipgloss.Color("235")),
	),
	SelectedCell: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	Amount: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
	),
	DetailTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	DetailBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Notice: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Roster: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Padding(0, 1),
	),
	RosterHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true).Padding(0, 1),
	),
	RosterActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true).Padding(0, 1),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
