package types

// Action represents a change the search widget should apply
type Action interface {
	Type() string
}

// Context provides read-only access to widget state needed for input handling
type Context interface {
	Query() string
	SuggestionCount() int
	HighlightIndex() int
}
