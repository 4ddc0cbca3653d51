package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"searchbox/internal/ui/input/types"
)

// Handler maps key presses to widget actions
type Handler struct {
	keys KeyMap
}

func New(keys KeyMap) *Handler {
	return &Handler{keys: keys}
}

// Keys returns the handler's bindings
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// HandleKey processes a key message and returns actions and whether the key
// was consumed. Unconsumed keys belong to the text field.
//
// Navigation keys are only claimed while suggestions are showing, so with
// an empty suggestion set arrows, enter and esc pass through untouched.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if key.Matches(msg, h.keys.Clear) {
		if ctx.Query() == "" {
			return nil, false
		}
		return []types.Action{types.ClearAction{}}, true
	}

	if ctx.SuggestionCount() == 0 {
		if key.Matches(msg, h.keys.Select) {
			return submit(ctx), false
		}
		return nil, false
	}

	switch {
	case key.Matches(msg, h.keys.Down):
		return []types.Action{types.MoveHighlightAction{Delta: 1}}, true
	case key.Matches(msg, h.keys.Up):
		return []types.Action{types.MoveHighlightAction{Delta: -1}}, true
	case key.Matches(msg, h.keys.Select):
		if idx := ctx.HighlightIndex(); idx >= 0 {
			return []types.Action{types.SelectSuggestionAction{Index: idx}}, true
		}
		return submit(ctx), false
	case key.Matches(msg, h.keys.Dismiss):
		return []types.Action{types.DismissAction{}}, true
	}
	return nil, false
}

func submit(ctx types.Context) []types.Action {
	q := ctx.Query()
	if strings.TrimSpace(q) == "" {
		return nil
	}
	return []types.Action{types.SubmitAction{Query: q}}
}
