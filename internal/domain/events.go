package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSuggestionsUpdated EventType = "SuggestionsUpdated"
	EventSuggestionSelected EventType = "SuggestionSelected"
	EventQueryCleared       EventType = "QueryCleared"
	EventQuerySubmitted     EventType = "QuerySubmitted"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
	EventError              EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SuggestionsUpdatedEvent is emitted when a debounced filter replaces the suggestion set
type SuggestionsUpdatedEvent struct {
	Query       string
	Suggestions []string
}

func (e SuggestionsUpdatedEvent) Type() EventType { return EventSuggestionsUpdated }

// SelectionSource says how a suggestion was picked
type SelectionSource string

const (
	SelectedByKeyboard SelectionSource = "keyboard"
	SelectedByMouse    SelectionSource = "mouse"
)

// SuggestionSelectedEvent is emitted when a suggestion replaces the query
type SuggestionSelectedEvent struct {
	Text   string
	Index  int
	Source SelectionSource
}

func (e SuggestionSelectedEvent) Type() EventType { return EventSuggestionSelected }

// QueryClearedEvent is emitted by the clear control
type QueryClearedEvent struct {
	Previous string
}

func (e QueryClearedEvent) Type() EventType { return EventQueryCleared }

// QuerySubmittedEvent is emitted when Enter is pressed with nothing highlighted
type QuerySubmittedEvent struct {
	Query string
}

func (e QuerySubmittedEvent) Type() EventType { return EventQuerySubmitted }

// ConfigLoadedEvent is emitted after the config file is read
type ConfigLoadedEvent struct {
	Path           string
	CandidateCount int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after the config file is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
