// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     exception
// Description: Exception record model
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package exception

import "fmt"

// Record is a named, described and identified exception entry.
// The zero Record is the sentinel value and is never stored in a registry.
type Record struct {
	Name        string `toml:"name" yaml:"name" json:"name"`
	Description string `toml:"description" yaml:"description" json:"description"`
	ID          int    `toml:"id" yaml:"id" json:"id"`
}

// IsZero reports whether r is the sentinel record.
func (r Record) IsZero() bool {
	return r.Name == "" && r.Description == "" && r.ID == 0
}

// Equal reports whether r and other share the same name and id.
// Descriptions are not compared.
func (r Record) Equal(other Record) bool {
	if r.Name != other.Name {
		return false
	}
	ord, err := Compare(&r, &other)
	return err == nil && ord == Identical
}

// String returns a short human readable form
func (r Record) String() string {
	return fmt.Sprintf("%s(%d)", r.Name, r.ID)
}

// slot is one storage cell of a registry
type slot struct {
	rec      Record
	occupied bool
}
