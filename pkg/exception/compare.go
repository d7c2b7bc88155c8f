// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     exception
// Description: Record ordering by numeric identifier
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package exception

import (
	exfcerror "github.com/msto63/exfc/foundation/core/error"
)

// Ordering is the result of comparing two records
type Ordering int

const (
	Less Ordering = iota - 1
	Identical
	Greater
)

// String returns the string representation of the ordering
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Identical:
		return "identical"
	case Greater:
		return "greater"
	default:
		return "unknown"
	}
}

// Compare orders a and b by ID. A nil argument yields ErrInvalidArgument.
func Compare(a, b *Record) (Ordering, error) {
	if a == nil || b == nil {
		return Identical, exfcerror.Wrap(ErrInvalidArgument, "cannot compare nil record").
			WithCode(exfcerror.CodeInvalidInput).
			WithOperation("Compare")
	}

	switch {
	case a.ID < b.ID:
		return Less, nil
	case a.ID > b.ID:
		return Greater, nil
	default:
		return Identical, nil
	}
}
