package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"searchbox/internal/ui/input"
)

// renderHelpContent renders the key reference shown in the pager
func renderHelpContent(keys input.KeyMap, candidates []string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(10)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	row := func(b key.Binding) string {
		h := b.Help()
		return fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc))
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("Search Bar Keys"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Suggestions"))
	help.WriteString("\n")
	help.WriteString(row(keys.Down))
	help.WriteString(row(keys.Up))
	help.WriteString(row(keys.Select))
	help.WriteString(row(keys.Dismiss))
	help.WriteString(descStyle.Render("  Arrows, enter and esc only act while suggestions are showing."))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Input"))
	help.WriteString("\n")
	help.WriteString(row(keys.Clear))
	help.WriteString(row(keys.ToggleFocus))
	help.WriteString(descStyle.Render("  Click a suggestion to pick it, or × to clear."))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(row(keys.Help))
	help.WriteString(row(keys.Quit))

	help.WriteString(sectionStyle.Render("Candidates"))
	help.WriteString("\n")
	for _, c := range candidates {
		help.WriteString("  " + c + "\n")
	}

	return help.String()
}

// HelpOps shows help outside the Bubble Tea renderer
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("failed to release terminal: %w", err)
	}

	defer func() {
		// let ov finish tearing down its screen before Bubble Tea takes over
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
