package types

// MoveHighlightAction moves the highlighted suggestion by Delta rows
type MoveHighlightAction struct {
	Delta int
}

func (a MoveHighlightAction) Type() string { return "move_highlight" }

// SelectSuggestionAction picks the suggestion at Index
type SelectSuggestionAction struct {
	Index int
}

func (a SelectSuggestionAction) Type() string { return "select_suggestion" }

// DismissAction hides the suggestion panel
type DismissAction struct{}

func (a DismissAction) Type() string { return "dismiss" }

// ClearAction empties the query
type ClearAction struct{}

func (a ClearAction) Type() string { return "clear" }

// SubmitAction submits the query as typed
type SubmitAction struct {
	Query string
}

func (a SubmitAction) Type() string { return "submit" }
