package domain

import (
	"strings"
	"time"
)

// SourceError is the sentinel stored in Result.Source when no endpoint
// could be reached.
const SourceError = "error"

// RawMaxLen caps the stored excerpt of the fetched status text.
const RawMaxLen = 4000

// Result is the outcome of one status determination.
//
// Down is tri-state: true = AWS is down, false = not down, nil = unknown.
// A nil Down is only persisted when the fetch itself failed; ambiguous
// classifier output is forced to false before the Result is built.
// Exactly one of Raw and Error is set on a completed check.
type Result struct {
	Down      *bool     `json:"down"` // pointer to allow null
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
	Raw       string    `json:"raw,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// DownWord maps the tri-state verdict to the word shown to humans.
func (r *Result) DownWord() string {
	return Word(r.Down)
}

// Word renders a tri-state down value as "Yes", "No" or "Unknown".
func Word(down *bool) string {
	switch {
	case down == nil:
		return "Unknown"
	case *down:
		return "Yes"
	default:
		return "No"
	}
}

// SameVerdict reports whether two tri-state values are identical,
// treating nil as its own state.
func SameVerdict(a, b *bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// SourceLabel simplifies the source URL for display: proxy mirrors are
// collapsed to "Mirror", the error sentinel stays as-is, anything else
// is "Direct".
func (r *Result) SourceLabel() string {
	switch {
	case r.Source == "":
		return "n/a"
	case r.Source == SourceError:
		return SourceError
	case strings.Contains(r.Source, "r.jina.ai"),
		strings.Contains(r.Source, "allorigins"):
		return "Mirror"
	default:
		return "Direct"
	}
}

// TruncateRaw bounds a status-text excerpt to RawMaxLen bytes.
func TruncateRaw(text string) string {
	if len(text) > RawMaxLen {
		return text[:RawMaxLen]
	}
	return text
}

// Bool returns a pointer to b, for building tri-state values.
func Bool(b bool) *bool { return &b }
