// Package search implements the search box: a text field whose suggestion
// panel is filtered from a candidate source after a quiet period, with
// keyboard and mouse selection.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"searchbox/internal/domain"
	"searchbox/internal/logging"
	"searchbox/internal/suggest"
	"searchbox/internal/ui/input"
	"searchbox/internal/ui/input/types"
	"searchbox/internal/ui/views"
)

const (
	DefaultDebounceDelay = 300 * time.Millisecond
	DefaultBlurDelay     = 100 * time.Millisecond
	DefaultWidth         = 40
)

// Publisher receives the widget's domain events. eventbus.EventBus satisfies it.
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// Options configures a search box. Zero values select defaults.
// MaxSuggestions is capped at suggest.DefaultLimit.
type Options struct {
	Source         suggest.Source
	DebounceDelay  time.Duration
	BlurDelay      time.Duration
	MaxSuggestions int
	Placeholder    string
	Width          int
	Keys           *input.KeyMap
	Styles         *views.Styles
	Publisher      Publisher
}

// Model is the search box state
type Model struct {
	input   textinput.Model
	handler *input.Handler
	styles  *views.Styles
	source  suggest.Source
	pub     Publisher

	debounceDelay time.Duration
	blurDelay     time.Duration
	limit         int
	width         int

	suggestions []string
	highlight   int  // -1 when nothing is highlighted
	focused     bool // focus state driving panel visibility

	// Timers are cancelled by bumping their sequence; late messages carrying
	// an old sequence are dropped.
	debounceSeq int
	blurSeq     int
	filterRuns  int

	ctx    context.Context
	cancel context.CancelFunc
	closed bool

	originX, originY int
}

// New creates a search box. The text field starts without focus.
func New(opts Options) *Model {
	if opts.Source == nil {
		opts.Source = suggest.NewStaticSource(nil)
	}
	if opts.DebounceDelay <= 0 {
		opts.DebounceDelay = DefaultDebounceDelay
	}
	if opts.BlurDelay <= 0 {
		opts.BlurDelay = DefaultBlurDelay
	}
	if opts.MaxSuggestions <= 0 || opts.MaxSuggestions > suggest.DefaultLimit {
		opts.MaxSuggestions = suggest.DefaultLimit
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Placeholder == "" {
		opts.Placeholder = "Search..."
	}
	keys := input.DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	if opts.Styles == nil {
		opts.Styles = views.NewStyles()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = opts.Placeholder
	ti.PlaceholderStyle = opts.Styles.Placeholder
	// prompt and the trailing clear control share the row with the text
	ti.Width = opts.Width - 5

	ctx, cancel := context.WithCancel(context.Background())

	return &Model{
		input:         ti,
		handler:       input.New(keys),
		styles:        opts.Styles,
		source:        opts.Source,
		pub:           opts.Publisher,
		debounceDelay: opts.DebounceDelay,
		blurDelay:     opts.BlurDelay,
		limit:         opts.MaxSuggestions,
		width:         opts.Width,
		highlight:     -1,
		ctx:           ctx,
		cancel:        cancel,
	}
}

// Query returns the current text
func (m *Model) Query() string {
	return m.input.Value()
}

// Suggestions returns a copy of the current suggestion set
func (m *Model) Suggestions() []string {
	out := make([]string, len(m.suggestions))
	copy(out, m.suggestions)
	return out
}

// SuggestionCount implements types.Context
func (m *Model) SuggestionCount() int {
	return len(m.suggestions)
}

// HighlightIndex implements types.Context
func (m *Model) HighlightIndex() int {
	return m.highlight
}

// Focused reports the focus state that drives the suggestion panel
func (m *Model) Focused() bool {
	return m.focused
}

// InputFocused reports whether the text field receives keystrokes
func (m *Model) InputFocused() bool {
	return m.input.Focused()
}

// PanelVisible reports whether the suggestion panel is rendered
func (m *Model) PanelVisible() bool {
	return m.focused && len(m.suggestions) > 0
}

// FilterRuns counts filter computations that actually ran
func (m *Model) FilterRuns() int {
	return m.filterRuns
}

// Keys returns the key bindings
func (m *Model) Keys() input.KeyMap {
	return m.handler.Keys()
}

// SetOrigin records where the widget's top-left cell sits on screen so
// mouse presses can be mapped onto it.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// Init returns nothing; the widget is idle until focused or typed into
func (m *Model) Init() tea.Cmd {
	return nil
}

// Focus gives the text field focus. Any pending blur is cancelled.
func (m *Model) Focus() tea.Cmd {
	if m.closed {
		return nil
	}
	m.blurSeq++
	m.focused = true
	return m.input.Focus()
}

// Blur takes focus from the text field. The focus state drops after the
// blur delay unless a focus or selection happens first.
func (m *Model) Blur() tea.Cmd {
	if m.closed {
		return nil
	}
	m.input.Blur()
	m.blurSeq++
	seq := m.blurSeq
	return tea.Tick(m.blurDelay, func(time.Time) tea.Msg {
		return blurMsg{seq: seq}
	})
}

// Close cancels pending timers and in-flight lookups. Late messages are
// ignored afterwards.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.debounceSeq++
	m.blurSeq++
	m.cancel()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.closed {
		return nil
	}

	switch msg := msg.(type) {
	case filterMsg:
		return m.runFilter(msg)

	case suggestionsMsg:
		m.applySuggestions(msg)
		return nil

	case blurMsg:
		if msg.seq == m.blurSeq {
			m.focused = false
		}
		return nil

	case tea.FocusMsg:
		return m.Focus()

	case tea.BlurMsg:
		return m.Blur()

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// cursor blink and similar
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !m.input.Focused() {
		return nil
	}

	actions, consumed := m.handler.HandleKey(msg, m)

	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if consumed {
		return tea.Batch(cmds...)
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	if after := m.input.Value(); after != before {
		cmds = append(cmds, m.inputChanged(after))
	}
	return tea.Batch(cmds...)
}

func (m *Model) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.MoveHighlightAction:
		m.moveHighlight(a.Delta)
	case types.SelectSuggestionAction:
		return m.Select(a.Index, domain.SelectedByKeyboard)
	case types.DismissAction:
		m.Dismiss()
	case types.ClearAction:
		return m.Clear()
	case types.SubmitAction:
		return m.submit(a.Query)
	default:
		logging.Warnf("search: unhandled action %s", action.Type())
	}
	return nil
}

// inputChanged reacts to an edit: the highlight resets and a filter is
// scheduled, replacing any pending one. Focus state is left alone; after
// esc or a selection the panel stays hidden until the field is refocused.
func (m *Model) inputChanged(value string) tea.Cmd {
	m.highlight = -1
	m.debounceSeq++

	if value == "" {
		m.suggestions = nil
		return nil
	}

	seq := m.debounceSeq
	return tea.Tick(m.debounceDelay, func(time.Time) tea.Msg {
		return filterMsg{seq: seq, query: value}
	})
}

func (m *Model) runFilter(msg filterMsg) tea.Cmd {
	if msg.seq != m.debounceSeq {
		return nil
	}
	m.filterRuns++
	logging.Debugf("search: filtering %q", msg.query)

	ctx, source, limit := m.ctx, m.source, m.limit
	return func() tea.Msg {
		s, err := source.Suggest(ctx, msg.query, limit)
		return suggestionsMsg{seq: msg.seq, query: msg.query, suggestions: s, err: err}
	}
}

func (m *Model) applySuggestions(msg suggestionsMsg) {
	if msg.seq != m.debounceSeq {
		return
	}
	if msg.err != nil {
		logging.Errorf("search: suggestion lookup for %q failed: %v", msg.query, msg.err)
		m.publish(domain.ErrorEvent{Message: fmt.Sprintf("suggestion lookup for %q failed", msg.query), Err: msg.err})
		msg.suggestions = nil
	}
	if len(msg.suggestions) > m.limit {
		msg.suggestions = msg.suggestions[:m.limit]
	}

	m.suggestions = msg.suggestions
	m.highlight = -1
	m.publish(domain.SuggestionsUpdatedEvent{Query: msg.query, Suggestions: m.Suggestions()})
}

func (m *Model) moveHighlight(delta int) {
	next := m.highlight + delta
	if next > len(m.suggestions)-1 {
		next = len(m.suggestions) - 1
	}
	if next < -1 {
		next = -1
	}
	m.highlight = next
}

// Select replaces the query with the suggestion at index, closes the panel
// and keeps keystrokes going to the text field.
func (m *Model) Select(index int, via domain.SelectionSource) tea.Cmd {
	if index < 0 || index >= len(m.suggestions) {
		return nil
	}
	text := m.suggestions[index]

	m.input.SetValue(text)
	m.input.CursorEnd()
	m.suggestions = nil
	m.highlight = -1
	m.focused = false
	// a selection settles focus; pending filter and blur are stale now
	m.debounceSeq++
	m.blurSeq++

	m.publish(domain.SuggestionSelectedEvent{Text: text, Index: index, Source: via})
	return tea.Batch(m.input.Focus(), func() tea.Msg { return SelectedMsg{Text: text} })
}

// Dismiss hides the panel and drops the suggestions
func (m *Model) Dismiss() {
	m.suggestions = nil
	m.highlight = -1
	m.focused = false
}

// Clear empties the query and suggestions and focuses the text field
func (m *Model) Clear() tea.Cmd {
	previous := m.input.Value()

	m.input.Reset()
	m.suggestions = nil
	m.highlight = -1
	m.debounceSeq++

	m.publish(domain.QueryClearedEvent{Previous: previous})
	return tea.Batch(m.Focus(), func() tea.Msg { return ClearedMsg{} })
}

func (m *Model) submit(query string) tea.Cmd {
	m.publish(domain.QuerySubmittedEvent{Query: query})
	return func() tea.Msg { return SubmittedMsg{Query: query} }
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	x, y := msg.X-m.originX, msg.Y-m.originY

	if m.clearControlAt(x, y) {
		return m.Clear()
	}
	if idx, ok := m.suggestionAt(x, y); ok {
		return m.Select(idx, domain.SelectedByMouse)
	}
	if m.inputAt(x, y) {
		if m.input.Focused() {
			return nil
		}
		return m.Focus()
	}
	// a press anywhere else moves focus away
	if m.input.Focused() {
		return m.Blur()
	}
	return nil
}

func (m *Model) publish(event domain.DomainEvent) {
	if m.pub != nil {
		m.pub.Publish(event)
	}
}
