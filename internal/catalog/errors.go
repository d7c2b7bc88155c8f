// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     catalog
// Description: Error definitions for the catalog loader
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package catalog

import "errors"

var (
	// ErrUnknownFormat is returned for file extensions other than toml, yaml and yml
	ErrUnknownFormat = errors.New("unknown catalog format")
	// ErrInvalidEntry is returned for entries the registry refused
	ErrInvalidEntry = errors.New("invalid catalog entry")
)
