// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     exception
// Description: Fixed-capacity registry of named, identified exception records
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

// Package exception implements a fixed-capacity, slot-backed registry of
// exception records.
//
// A Registry is allocated once by New and never grows. Removals leave holes
// in the slot array; the registry compacts itself before it hands out a new
// slot and before it returns a snapshot, so occupied records always form a
// dense prefix when they are observed through GetAll.
//
// Two tiers of failure exist. Ordinary outcomes (ErrNotFound, ErrDuplicate,
// ErrFull, ErrRejected, ErrInvalidArgument) are returned as errors and are
// tested with errors.Is. Programmer errors and resource violations (an
// oversized name, a nil or uninitialized registry) are returned as *Fatal,
// which carries the builtin exception record whose ID becomes the process
// exit status once the error reaches the top-level handler.
package exception
