package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"searchbox/internal/config"
	"searchbox/internal/logging"
	"searchbox/internal/suggest"
	"searchbox/internal/ui/input"
	"searchbox/internal/ui/search"
	"searchbox/internal/ui/views"
)

const (
	pageTitle    = "Components Demo"
	sectionTitle = "Search Bar"
	statusTTL    = 4 * time.Second
)

// Model is the page shell: headings, the search box and a status line
type Model struct {
	config  *config.Config
	styles  *views.Styles
	keys    input.KeyMap
	search  *search.Model
	help    help.Model
	helpOps *HelpOps

	candidates []string

	width  int
	height int

	status       string
	statusSeq    int
	statusStrong bool

	inPagerMode bool
	quitting    bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the page shell around a search box wired to cfg
func NewModel(cfg *config.Config, pub search.Publisher) *Model {
	styles := views.NewStyles()
	keys := input.DefaultKeyMap()
	src := suggest.NewStaticSource(cfg.Candidates)

	m := &Model{
		config: cfg,
		styles: styles,
		keys:   keys,
		search: search.New(search.Options{
			Source:         src,
			DebounceDelay:  cfg.Search.DebounceDelay(),
			BlurDelay:      cfg.Search.BlurDelay(),
			MaxSuggestions: cfg.Search.MaxSuggestions,
			Placeholder:    cfg.Search.Placeholder,
			Width:          cfg.Search.Width,
			Keys:           &keys,
			Styles:         styles,
			Publisher:      pub,
		}),
		help:       help.New(),
		candidates: src.Candidates(),
	}
	m.search.SetOrigin(m.searchOrigin())
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Search exposes the mounted search box
func (m *Model) Search() *search.Model {
	return m.search
}

// Status returns the status line text
func (m *Model) Status() string {
	return m.status
}

// Init focuses the search box
func (m *Model) Init() tea.Cmd {
	return m.search.Focus()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, m.quit()
		case key.Matches(msg, m.keys.Help):
			if m.helpOps == nil {
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			}
			return m, m.fetchHelpPager(renderHelpContent(m.keys, m.candidates))
		case key.Matches(msg, m.keys.ToggleFocus):
			if m.search.InputFocused() {
				return m, m.search.Blur()
			}
			return m, m.search.Focus()
		}
		return m, m.search.Update(msg)

	case search.SelectedMsg:
		return m, m.setStatus(fmt.Sprintf("Selected %q", msg.Text), true)

	case search.SubmittedMsg:
		return m, m.setStatus(fmt.Sprintf("Searching for %q", msg.Query), true)

	case search.ClearedMsg:
		return m, m.setStatus("Cleared", false)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: fall back to the inline full help
			logging.Warnf("Help pager failed: %v", msg.err)
			m.help.ShowAll = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	return m, m.search.Update(msg)
}

// View renders the page
func (m *Model) View() string {
	if m.inPagerMode || m.quitting {
		return ""
	}

	parts := []string{m.renderHeader(), m.search.View()}
	if m.status != "" {
		style := m.styles.Status
		if m.statusStrong {
			style = m.styles.StatusSuccess
		}
		parts = append(parts, style.Render(m.status))
	}
	parts = append(parts, m.styles.Help.Render(m.help.View(m.keys)))

	return m.styles.Main.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) renderHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(pageTitle),
		m.styles.Section.Render(sectionTitle),
	)
}

// searchOrigin is the screen cell of the search box's top-left corner
func (m *Model) searchOrigin() (int, int) {
	return m.styles.Main.GetPaddingLeft(), m.styles.Main.GetPaddingTop() + lipgloss.Height(m.renderHeader())
}

func (m *Model) setStatus(text string, strong bool) tea.Cmd {
	m.status = text
	m.statusStrong = strong
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// quit tears the search box down so no pending timer outlives the page
func (m *Model) quit() tea.Cmd {
	m.search.Close()
	m.quitting = true
	return tea.Quit
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}
