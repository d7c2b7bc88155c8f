// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     catalog
// Description: Loads catalog entries into a registry
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package catalog

import (
	"errors"
	"path/filepath"

	exfcerror "github.com/msto63/exfc/foundation/core/error"
	exfclog "github.com/msto63/exfc/foundation/core/log"
	"github.com/msto63/exfc/pkg/core/logging"
	"github.com/msto63/exfc/pkg/exception"
)

// Loader adds catalog entries to a registry
type Loader struct {
	registry       *exception.Registry
	logger         *exfclog.Logger
	skipDuplicates bool
}

// Result summarizes one Apply call
type Result struct {
	Added   int
	Skipped []string
}

// NewLoader creates a loader for registry. A nil logger discards output.
func NewLoader(registry *exception.Registry, logger *exfclog.Logger) *Loader {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Loader{
		registry: registry,
		logger:   logger.WithName("catalog"),
	}
}

// SkipDuplicates makes Apply ignore entries that collide with existing records
func (l *Loader) SkipDuplicates(skip bool) *Loader {
	l.skipDuplicates = skip
	return l
}

// LoadFile reads the catalog at path and applies it
func (l *Loader) LoadFile(path string) (Result, error) {
	f, err := ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	return l.Apply(f)
}

// Apply adds every entry of f in order. It stops at the first entry the
// registry refuses, except duplicates when SkipDuplicates is set. Fatal
// registry errors are returned unchanged.
func (l *Loader) Apply(f *File) (Result, error) {
	var res Result
	source := "inline"
	if f.Source != "" {
		source = filepath.Base(f.Source)
	}

	for i, entry := range f.Exceptions {
		var (
			index, id int
			err       error
		)
		if entry.ID == nil {
			index, id, err = l.registry.AddNext(entry.Name, entry.Description)
		} else {
			id = *entry.ID
			index, err = l.registry.Add(entry.Name, entry.Description, id)
		}

		if err != nil {
			if exception.IsFatal(err) {
				return res, err
			}
			if l.skipDuplicates && errors.Is(err, exception.ErrDuplicate) {
				l.logger.Warn("catalog entry skipped", exfclog.Fields{
					"entry": i,
					"name":  entry.Name,
				}, exfclog.Err(err))
				res.Skipped = append(res.Skipped, entry.Name)
				continue
			}
			return res, exfcerror.Wrap(errors.Join(ErrInvalidEntry, err), "catalog entry rejected").
				WithOperation("catalog.Apply").
				WithDetail("entry", i).
				WithDetail("name", entry.Name).
				WithDetail("source", source)
		}

		l.logger.Debug("catalog entry added", logging.Fields(
			"name", entry.Name,
			"id", id,
			"index", index,
		))
		res.Added++
	}

	l.logger.Info("catalog applied", logging.Fields(
		"source", source,
		"added", res.Added,
		"skipped", len(res.Skipped),
	))
	return res, nil
}
