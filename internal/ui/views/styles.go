package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Section       lipgloss.Style
	Main          lipgloss.Style
	InputBox      lipgloss.Style
	InputFocused  lipgloss.Style
	Placeholder   lipgloss.Style
	ClearControl  lipgloss.Style
	Panel         lipgloss.Style
	Suggestion    lipgloss.Style
	Highlight     lipgloss.Style
	Match         lipgloss.Style
	Status        lipgloss.Style
	StatusSuccess lipgloss.Style
	Help          lipgloss.Style
	Dim           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		Main: lipgloss.NewStyle().Padding(1, 2),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")),
		Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ClearControl: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // red
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")),
		Suggestion: lipgloss.NewStyle(),
		Highlight: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Background(lipgloss.Color("238")).
			Bold(true),
		Match:         lipgloss.NewStyle().Underline(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).MarginTop(1), // green
		Help:          lipgloss.NewStyle().Faint(true).MarginTop(1),
		Dim:           lipgloss.NewStyle().Faint(true),
	}
}
