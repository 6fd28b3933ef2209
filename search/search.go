// Package search implements single-pattern exact substring search over byte
// slices behind a pluggable algorithm interface.
//
// An Algorithm builds a Matcher from a pattern once; the Matcher is then
// reused across many texts, amortizing the preprocessing cost. Built matchers
// hold no mutable state besides optional diagnostics counters and are safe
// for concurrent use.
package search

import (
	"errors"
	"fmt"
)

// NotFound is returned by Matcher.Index when the pattern does not occur in
// the searched portion of the text.
const NotFound = -1

// ErrEmptyPattern is returned by NewMatcher when given a zero-length pattern.
var ErrEmptyPattern = errors.New("search: empty pattern")

// Matcher performs repeated searches for one fixed pattern.
type Matcher interface {
	// Index returns the lowest index >= from at which the pattern occurs in
	// text, or NotFound. It panics if from is outside [0, len(text)].
	Index(text []byte, from int) int
}

// Algorithm constructs Matchers for a particular search strategy.
type Algorithm interface {
	// NewMatcher builds a Matcher for pattern. The pattern must be non-empty;
	// the matcher keeps its own copy.
	NewMatcher(pattern []byte) (Matcher, error)

	// String identifies the algorithm and its tuning parameters.
	String() string
}

// StatsReporter is implemented by matchers that record search diagnostics.
// Stats returns a human-readable summary and resets the counters as a side
// effect; it returns the empty string when nothing was recorded.
type StatsReporter interface {
	Stats() string
}

func checkFrom(textLen, from int) {
	if from < 0 || from > textLen {
		panic(fmt.Sprintf("search: from index %d out of range [0, %d]", from, textLen))
	}
}
