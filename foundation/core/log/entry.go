// File: entry.go
// Title: Log Entries and Fields
// Description: The record handed to formatters and the Fields helpers used
//              to attach structured data to a message.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2026-10-12 v0.2.0: Dropped request/user context and durations
// - 2026-10-16 v0.3.0: Variadic Merge, sorted field keys, caller formatting

package log

import (
	"sort"
	"strconv"
	"time"
)

// Entry is one log event as seen by a Formatter
type Entry struct {
	Timestamp     time.Time
	Level         Level
	Message       string
	Logger        string
	CorrelationID string

	Fields Fields
	Error  error
	Caller *CallerInfo
}

// CallerInfo locates the code that emitted an entry
type CallerInfo struct {
	Function string
	File     string
	Line     int
}

// String renders the location as file:line
func (c *CallerInfo) String() string {
	return c.File + ":" + strconv.Itoa(c.Line)
}

// NewEntry creates an entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    Fields{},
	}
}

// Fields are key-value pairs attached to an entry
type Fields map[string]interface{}

// Field creates a single field
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err stores err under the "error" key
func Err(err error) Fields {
	return Field("error", err)
}

// Int creates an integer field
func Int(key string, value int) Fields {
	return Field(key, value)
}

// String creates a string field
func String(key, value string) Fields {
	return Field(key, value)
}

// Bool creates a boolean field
func Bool(key string, value bool) Fields {
	return Field(key, value)
}

// Merge returns a new set holding f and then others; later keys win
func (f Fields) Merge(others ...Fields) Fields {
	size := len(f)
	for _, o := range others {
		size += len(o)
	}

	out := make(Fields, size)
	out.absorb(f)
	for _, o := range others {
		out.absorb(o)
	}
	return out
}

// Clone copies f. The clone of nil is nil.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	return Fields{}.Merge(f)
}

// Keys returns the field names in sorted order
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (f Fields) absorb(src Fields) {
	for k, v := range src {
		f[k] = v
	}
}
