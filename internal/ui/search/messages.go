package search

// filterMsg fires when the debounce window for seq has elapsed
type filterMsg struct {
	seq   int
	query string
}

// suggestionsMsg carries the source's answer for a filter run
type suggestionsMsg struct {
	seq         int
	query       string
	suggestions []string
	err         error
}

// blurMsg fires when the blur grace period for seq has elapsed
type blurMsg struct {
	seq int
}

// SelectedMsg tells the host that a suggestion replaced the query
type SelectedMsg struct {
	Text string
}

// SubmittedMsg tells the host that the query was submitted as typed
type SubmittedMsg struct {
	Query string
}

// ClearedMsg tells the host that the clear control emptied the query
type ClearedMsg struct{}
