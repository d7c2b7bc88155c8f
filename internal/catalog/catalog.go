// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     catalog
// Description: TOML and YAML exception catalogs
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package catalog

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	exfcerror "github.com/msto63/exfc/foundation/core/error"
	"github.com/msto63/exfc/pkg/exception"
)

// Format is the encoding of a catalog file
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", exfcerror.Wrap(ErrUnknownFormat, name).
			WithCode(exfcerror.CodeInvalidFormat)
	}
}

// FormatFromPath derives the format from a file extension
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Entry is one catalog record. Entries without an ID get the next free id.
type Entry struct {
	Name        string `toml:"name" yaml:"name"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
	ID          *int   `toml:"id,omitempty" yaml:"id,omitempty"`
}

// File is a decoded catalog
type File struct {
	Exceptions []Entry `toml:"exception" yaml:"exception"`

	// Source is the path the catalog was read from
	Source string `toml:"-" yaml:"-"`
}

// FromRecords builds a catalog holding records
func FromRecords(records []exception.Record) *File {
	f := &File{Exceptions: make([]Entry, 0, len(records))}
	for _, rec := range records {
		id := rec.ID
		f.Exceptions = append(f.Exceptions, Entry{
			Name:        rec.Name,
			Description: rec.Description,
			ID:          &id,
		})
	}
	return f
}

// Parse decodes a catalog
func Parse(data []byte, format Format) (*File, error) {
	var f File
	var err error

	switch format {
	case FormatTOML:
		_, err = toml.Decode(string(data), &f)
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	default:
		return nil, exfcerror.Wrap(ErrUnknownFormat, string(format)).
			WithCode(exfcerror.CodeInvalidFormat)
	}

	if err != nil {
		return nil, exfcerror.Wrap(err, "failed to parse catalog").
			WithCode(exfcerror.CodeInvalidFormat).
			WithDetail("format", string(format))
	}
	return &f, nil
}

// ReadFile reads and decodes the catalog at path
func ReadFile(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, exfcerror.Wrap(err, "failed to read catalog").
			WithCode(exfcerror.CodeMissingConfig).
			WithDetail("path", path)
	}

	f, err := Parse(data, format)
	if err != nil {
		return nil, exfcerror.Wrap(err, "catalog "+filepath.Base(path)).
			WithDetail("path", path)
	}
	f.Source = path
	return f, nil
}

// Encode writes the catalog in the given format
func (f *File) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(f)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return exfcerror.Wrap(ErrUnknownFormat, string(format)).
			WithCode(exfcerror.CodeInvalidFormat)
	}
}
