package search

import (
	"bytes"
	"fmt"
)

// DefaultTableBits gives a 4096-entry shift table (16 KiB), large enough to
// keep hash collisions rare for typical patterns while staying cache
// resident.
const DefaultTableBits = 4

// TwoByteHash is a Horspool-style search algorithm that reads two bytes per
// step. A full two-byte skip table would need 65536 entries; instead the
// table is keyed by hash(a, b) = a<<bits ^ b and holds 256<<bits entries.
// When two byte pairs collide, the slot keeps the smaller of their shifts,
// so collisions can only make the scan more conservative, never skip a
// match.
type TwoByteHash struct {
	tableBits int
	counters  *Counters
}

// NewTwoByteHash returns an algorithm whose matchers use a 256<<tableBits
// entry shift table. Larger tables mean fewer collisions and longer average
// skips, until they stop fitting in cache. It panics if tableBits is
// negative.
func NewTwoByteHash(tableBits int) TwoByteHash {
	if tableBits < 0 {
		panic("search: tableBits must be non-negative")
	}
	return TwoByteHash{tableBits: tableBits}
}

// NewTwoByteHashWithCounters is like NewTwoByteHash but wires diagnostics
// counters into every matcher it builds. A nil Counters disables recording.
func NewTwoByteHashWithCounters(tableBits int, c *Counters) TwoByteHash {
	a := NewTwoByteHash(tableBits)
	a.counters = c
	return a
}

// NewMatcher builds a matcher for pattern. The shift table is computed once
// here and never mutated afterwards.
func (a TwoByteHash) NewMatcher(pattern []byte) (Matcher, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	pat := append([]byte(nil), pattern...)
	bits := uint(a.tableBits)
	return &twoByteHashMatcher{
		pattern:  pat,
		shifts:   buildShifts(pat, bits),
		bits:     bits,
		counters: a.counters,
	}, nil
}

func (a TwoByteHash) String() string {
	return fmt.Sprintf("TwoByteHash(%d)", a.tableBits)
}

func pairHash(a, b byte, bits uint) uint32 {
	return uint32(a)<<bits ^ uint32(b)
}

// buildShifts computes the skip distance for every two-byte hash. Each entry
// is the number of bytes the cursor may advance when that hash is seen at
// the current position without skipping past an occurrence of the pattern.
func buildShifts(pattern []byte, bits uint) []int32 {
	shifts := make([]int32, 256<<bits)

	if len(pattern) == 1 {
		// No two-byte window exists; one byte is the only safe step. The
		// scanner never consults the table for such patterns, but the
		// degenerate form is still well defined.
		for i := range shifts {
			shifts[i] = 1
		}
		return shifts
	}

	// A hash that occurs nowhere in the pattern allows skipping the full
	// pattern length past the window.
	for i := range shifts {
		shifts[i] = int32(len(pattern))
	}

	// Tighten the slots covered by the pattern's own windows: if the window
	// at j is seen in the text, the pattern can start at most len-2-j bytes
	// to the right of it.
	for j := len(pattern) - 2; j >= 0; j-- {
		shift := int32(len(pattern) - 2 - j)
		h := pairHash(pattern[j], pattern[j+1], bits)
		if shifts[h] > shift { // colliding windows keep the smaller shift
			shifts[h] = shift
		}
	}

	// Windows straddling the position just before the pattern: any byte
	// followed by the pattern's first byte. The pattern could start one byte
	// further, so len-1 is the largest safe skip.
	shift := int32(len(pattern) - 1)
	for b := 0; b < 256; b++ {
		h := pairHash(byte(b), pattern[0], bits)
		if shifts[h] > shift {
			shifts[h] = shift
		}
	}

	return shifts
}

type twoByteHashMatcher struct {
	pattern  []byte
	shifts   []int32
	bits     uint
	counters *Counters
}

// Index returns the lowest index >= from at which the pattern occurs in
// text, or NotFound.
func (m *twoByteHashMatcher) Index(text []byte, from int) int {
	checkFrom(len(text), from)

	n := len(m.pattern)
	if n > len(text)-from {
		return NotFound
	}
	if n == 1 {
		// Single byte: no two-byte window to hash, and IndexByte beats any
		// table walk anyway.
		if i := bytes.IndexByte(text[from:], m.pattern[0]); i >= 0 {
			return from + i
		}
		return NotFound
	}

	// The cursor tracks the last byte of the candidate alignment. n >= 2
	// keeps i-1 in bounds.
	offset := n - 1
	i := from + offset
	for i < len(text) {
		skip := m.shifts[pairHash(text[i-1], text[i], m.bits)]
		m.counters.record(int64(skip))

		if skip == 0 { // candidate alignment, compare in full
			if bytes.Equal(text[i-offset:i+1], m.pattern) {
				return i - offset
			}
			i++
		}
		i += int(skip)
	}
	return NotFound
}

func (m *twoByteHashMatcher) String() string {
	return fmt.Sprintf("TwoByteHash(%d)", m.bits)
}

// Stats reports and resets the matcher's diagnostics counters.
func (m *twoByteHashMatcher) Stats() string {
	return m.counters.String()
}
