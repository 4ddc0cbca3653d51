// Package suggest holds the candidate terms and the filter that turns a
// query into an ordered suggestion set.
package suggest

import (
	"context"
	"strings"
)

// DefaultLimit is the maximum number of suggestions shown at once
const DefaultLimit = 5

// DefaultCandidates is the compiled-in candidate list
var DefaultCandidates = []string{
	"React", "JavaScript", "TypeScript", "Node.js", "Python",
	"HTML", "CSS", "GraphQL", "Redux", "Next.js",
}

// Source produces suggestions for a query
type Source interface {
	Suggest(ctx context.Context, query string, limit int) ([]string, error)
}

// StaticSource filters a fixed candidate list
type StaticSource struct {
	candidates []string
}

// NewStaticSource creates a source over a copy of candidates.
// A nil or empty list falls back to DefaultCandidates.
func NewStaticSource(candidates []string) *StaticSource {
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}
	c := make([]string, len(candidates))
	copy(c, candidates)
	return &StaticSource{candidates: c}
}

// Candidates returns a copy of the candidate list
func (s *StaticSource) Candidates() []string {
	c := make([]string, len(s.candidates))
	copy(c, s.candidates)
	return c
}

// Suggest returns the first limit candidates containing query
func (s *StaticSource) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Filter(s.candidates, query, limit), nil
}

// Filter returns the first limit candidates whose text contains query,
// ignoring case, in candidate order. A blank query matches nothing.
// limit <= 0 means no limit.
func Filter(candidates []string, query string, limit int) []string {
	if strings.TrimSpace(query) == "" {
		return []string{}
	}

	q := strings.ToLower(query)
	matches := make([]string, 0, DefaultLimit)
	for _, c := range candidates {
		if limit > 0 && len(matches) >= limit {
			break
		}
		if Matches(c, q) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Matches reports whether candidate contains the lowercased query
func Matches(candidate, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(candidate), lowerQuery)
}
