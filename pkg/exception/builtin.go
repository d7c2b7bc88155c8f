// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     exception
// Description: Predefined exception catalogue
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package exception

import "fmt"

// Kind identifies a predefined exception. Its numeric value plus the id
// offset of a registry yields the record ID.
type Kind int

const (
	KindException Kind = iota
	KindInstanceFailure
	KindIllegalMemoryAccess
	KindInvalidArgument
	KindOutOfBound
	KindInvalidNullPointer
	KindOutOfMemory
	KindBufferOverflow

	kindCount
)

var builtinTable = [kindCount]struct {
	name        string
	description string
}{
	KindException:           {"Exception", "unspecified exception"},
	KindInstanceFailure:     {"InstanceFailureException", "an instance could not be created or was never initialized"},
	KindIllegalMemoryAccess: {"IllegalMemoryAccessException", "access outside of owned storage"},
	KindInvalidArgument:     {"InvalidArgumentException", "an argument violates the operation contract"},
	KindOutOfBound:          {"OutOfBoundException", "an index exceeds the bounds of its container"},
	KindInvalidNullPointer:  {"InvalidNullPointerException", "a required reference is nil"},
	KindOutOfMemory:         {"OutOfMemoryException", "storage could not be allocated"},
	KindBufferOverflow:      {"BufferOverflowException", "a value exceeds the configured buffer size"},
}

// String returns the exception name of the kind
func (k Kind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return builtinTable[k].name
}

// IsValid reports whether k is a predefined kind
func (k Kind) IsValid() bool {
	return k >= 0 && k < kindCount
}

// Builtin returns the record of kind k with ids starting at offset.
// Unknown kinds map to the generic Exception record.
func Builtin(k Kind, offset int) Record {
	if !k.IsValid() {
		k = KindException
	}
	entry := builtinTable[k]
	return Record{
		Name:        entry.name,
		Description: entry.description,
		ID:          offset + int(k),
	}
}

// Builtins returns the full predefined catalogue in id order.
func Builtins(offset int) []Record {
	records := make([]Record, 0, kindCount)
	for k := KindException; k < kindCount; k++ {
		records = append(records, Builtin(k, offset))
	}
	return records
}
