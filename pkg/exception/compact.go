// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     exception
// Description: Slot compaction algorithms
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package exception

// compactFunc moves all occupied slots into a gap-free prefix, keeping their
// relative order and clearing everything behind it. It returns the length of
// the prefix.
type compactFunc func(slots []slot) int

func compactorFor(s Strategy) compactFunc {
	if s == StrategyInPlace {
		return compactInPlace
	}
	return compactBuffered
}

// compactBuffered copies occupied slots into a scratch slice and writes them
// back. O(n) time, O(n) space.
func compactBuffered(slots []slot) int {
	scratch := make([]slot, 0, len(slots))
	for _, s := range slots {
		if s.occupied {
			scratch = append(scratch, s)
		}
	}

	k := copy(slots, scratch)
	for i := k; i < len(slots); i++ {
		slots[i] = slot{}
	}
	return k
}

// compactInPlace swaps every occupied slot into the first hole in front of it.
// Everything in [hole, i) is empty at each step. O(n) time, O(1) space.
func compactInPlace(slots []slot) int {
	hole := 0
	for i := range slots {
		if !slots[i].occupied {
			continue
		}
		if i != hole {
			slots[hole], slots[i] = slots[i], slots[hole]
		}
		hole++
	}
	return hole
}
