package middleware

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/typist/pkg/domain"
	"github.com/rivo/uniseg"
)

// CharUnit selects what one Backspace or ArrowLeft press is assumed to traverse.
type CharUnit string

const (
	// CharUnitCodePoint counts Unicode scalar values. This is the default.
	CharUnitCodePoint CharUnit = "codepoint"

	// CharUnitGrapheme counts user-perceived characters (extended grapheme clusters),
	// for applications where Backspace erases a whole cluster such as "é" or a flag emoji.
	CharUnitGrapheme CharUnit = "grapheme"
)

// ParseCharUnit resolves a configuration value. An empty string selects CharUnitCodePoint.
func ParseCharUnit(s string) (CharUnit, error) {
	switch CharUnit(strings.ToLower(strings.TrimSpace(s))) {
	case "", CharUnitCodePoint:
		return CharUnitCodePoint, nil
	case CharUnitGrapheme:
		return CharUnitGrapheme, nil
	default:
		return CharUnitCodePoint, fmt.Errorf("unknown character unit %q", s)
	}
}

// CountFunc returns the length of s in some character unit.
type CountFunc func(s string) int

// Counter returns the CountFunc measuring in u.
func (u CharUnit) Counter() CountFunc {
	if u == CharUnitGrapheme {
		return CountGraphemes
	}
	return CountCodePoints
}

// CountCodePoints returns the number of Unicode code points in s.
func CountCodePoints(s string) int {
	return utf8.RuneCountInString(s)
}

// CountGraphemes returns the number of extended grapheme clusters in s.
func CountGraphemes(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// BackspaceCount returns how many Backspace presses erase trigger while
// keeping its left separator on screen.
// If the separator is longer than the trigger the count is clamped to zero
// and domain.ErrSeparatorOverflow is returned alongside it.
func BackspaceCount(trigger string, leftSeparator *string, count CountFunc) (int, error) {
	n := count(trigger)
	if leftSeparator == nil {
		return n, nil
	}

	sep := count(*leftSeparator)
	if sep > n {
		return 0, fmt.Errorf("%w: separator has %d characters, trigger has %d", domain.ErrSeparatorOverflow, sep, n)
	}
	return n - sep, nil
}
