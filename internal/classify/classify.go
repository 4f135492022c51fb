// Package classify decides whether a fetched status-page text describes an
// ongoing AWS incident. It is a deliberately simple keyword heuristic, not
// NLP; the precedence order of the decision rule is load-bearing.
package classify

import (
	"regexp"
	"strings"
)

// Verdict is the tri-state outcome of classifying a status text.
type Verdict int

const (
	Unknown Verdict = iota // no usable signal either way
	Up                     // page reads as normal operation
	Down                   // page reads as outage or degradation
)

func (v Verdict) String() string {
	switch v {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Phrases that indicate normal operation.
var okSignals = []string{
	"operating normally",
	"no ongoing events",
	"all systems",
	"no events reported",
	"healthy",
}

// Phrases that indicate an outage, degradation or open investigation.
// Bare "ongoing" and "event" are deliberately absent: they are substrings of
// the healthy phrase "no ongoing events" and would turn every all-clear page
// into a contradictory signal. The open-issue pattern below still catches
// texts that mention an ongoing problem without any of these phrases.
var badSignals = []string{
	"degradation",
	"outage",
	"impact",
	"investigating",
	"interruption",
	"service disruption",
	"issue",
	"incident",
}

// openIssuePattern is the tie-breaker for ambiguous or signal-free text.
var openIssuePattern = regexp.MustCompile(`ongoing|current|open\s+issues`)

// Classify maps raw status-page text to a tri-state verdict. It is pure and
// never fails; empty or unparseable input yields Unknown.
//
// Decision rule, in order: incident signals with zero healthy signals means
// Down; healthy signals with zero incident signals means Up; anything else
// (no signals, or contradictory signals) falls through to the open-issue
// pattern, and finally to Unknown. Hits count distinct phrases present, not
// total occurrences.
func Classify(text string) Verdict {
	if text == "" {
		return Unknown
	}
	lower := strings.ToLower(text)

	okHits := countHits(lower, okSignals)
	badHits := countHits(lower, badSignals)

	if badHits > 0 && okHits == 0 {
		return Down
	}
	if okHits > 0 && badHits == 0 {
		return Up
	}
	if openIssuePattern.MatchString(lower) {
		return Down
	}
	return Unknown
}

func countHits(lower string, signals []string) int {
	n := 0
	for _, s := range signals {
		if strings.Contains(lower, s) {
			n++
		}
	}
	return n
}
