// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     exception
// Description: Byte-wise name matching
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package exception

// caseOffset is the ASCII distance between a lower-case letter and its
// upper-case counterpart.
const caseOffset = 'a' - 'A'

// QuickMatch reports whether a and b match byte by byte under CharacterMatch.
// Strings of different length never match.
func QuickMatch(a, b string, caseSensitive bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if !CharacterMatch(a[i], b[i], caseSensitive) {
			return false
		}
	}
	return true
}

// CharacterMatch compares two bytes.
//
// With caseSensitive set it is plain equality. Without it, the match holds
// only when b is exactly caseOffset above a, i.e. b is the lower-case form of
// the upper-case a. The relation is one-directional: ('A','a') matches while
// ('a','A') and ('a','a') do not. Registry lookups are always case-sensitive
// and never rely on the relaxed form.
func CharacterMatch(a, b byte, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}
	return int(b)-int(a) == caseOffset
}
