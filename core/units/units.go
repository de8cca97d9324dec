package units

import (
	"sync"

	"github.com/npillmayer/uax/grapheme"
)

// Splitter denotes the kind of unit text is split into.
type Splitter int

const (
	// CodePoints splits text into Unicode code points.
	CodePoints Splitter = iota
	// Graphemes splits text into extended grapheme clusters (UAX #29).
	Graphemes
)

func (s Splitter) String() string {
	switch s {
	case CodePoints:
		return "code-points"
	case Graphemes:
		return "graphemes"
	}
	return "unknown-splitter"
}

var setupGraphemes sync.Once

// Split splits s into units. Concatenating the units yields s.
// The empty string yields an empty (nil) slice.
func (s Splitter) Split(text string) []string {
	if text == "" {
		return nil
	}
	if s == Graphemes {
		return graphemeUnits(text)
	}
	units := make([]string, 0, len(text))
	for _, r := range text {
		units = append(units, string(r))
	}
	return units
}

// Len returns the number of units in text.
func (s Splitter) Len(text string) int {
	return len(s.Split(text))
}

func graphemeUnits(text string) []string {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(text)
	l := gstr.Len()
	units := make([]string, l)
	for i := 0; i < l; i++ {
		units[i] = gstr.Nth(i)
	}
	tracer().Debugf("split %q into %d graphemes", text, l)
	return units
}

// Index returns the index of the first occurrence of pattern in units,
// starting the search at position from, or -1 if pattern is not present.
// An empty pattern matches at from.
func Index(units []string, from int, pattern []string) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(pattern) <= len(units); i++ {
		if HasPrefix(units[i:], pattern) {
			return i
		}
	}
	return -1
}

// HasPrefix reports whether units begins with pattern.
func HasPrefix(units []string, pattern []string) bool {
	if len(pattern) > len(units) {
		return false
	}
	for i, u := range pattern {
		if units[i] != u {
			return false
		}
	}
	return true
}
