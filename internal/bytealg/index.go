// Package bytealg provides scalar reference implementations of substring
// search, shared by the search package and its tests.
package bytealg

import "bytes"

// Index finds the first occurrence of pattern in text at or after from.
// It delegates to the stdlib search, which is assembly-backed on most
// platforms.
func Index(text, pattern []byte, from int) int {
	if i := bytes.Index(text[from:], pattern); i >= 0 {
		return from + i
	}
	return -1
}

// Naive checks every alignment in order with a full comparison. Slow, but
// obviously correct; the oracle the skip-table matchers are tested against.
func Naive(text, pattern []byte, from int) int {
	n := len(pattern)
	for i := from; i+n <= len(text); i++ {
		if bytes.Equal(text[i:i+n], pattern) {
			return i
		}
	}
	return -1
}
