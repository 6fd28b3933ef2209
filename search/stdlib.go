package search

import "github.com/mhr3/bytesearch/internal/bytealg"

// Stdlib is the baseline strategy: its matchers delegate to the standard
// library's search, which is assembly-backed on most platforms.
type Stdlib struct{}

func (Stdlib) NewMatcher(pattern []byte) (Matcher, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	return stdlibMatcher(append([]byte(nil), pattern...)), nil
}

func (Stdlib) String() string { return "Stdlib" }

type stdlibMatcher []byte

func (m stdlibMatcher) Index(text []byte, from int) int {
	checkFrom(len(text), from)
	return bytealg.Index(text, m, from)
}

func (m stdlibMatcher) String() string { return "Stdlib" }
