// File: format.go
// Title: Output Formats
// Description: JSON lines for machines and a compact single-line text form
//              for terminals.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-12 v0.2.0: JSON and text only, deterministic field order in text
// - 2026-10-16 v0.3.0: Text unmarshaling, builder based text output

package log

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format selects a Formatter
type Format int

const (
	FormatJSON Format = iota
	FormatText
)

var formatNames = [...]string{
	FormatJSON: "json",
	FormatText: "text",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// UnmarshalText implements encoding.TextUnmarshaler
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFormat parses "json" or "text" in any case
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range formatNames {
		if s == name {
			return Format(i), nil
		}
	}
	return FormatJSON, &ParseError{Kind: "format", Input: s}
}

// Formatter turns an entry into one output line
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// FormatterFor returns the formatter of format; unknown formats get JSON
func FormatterFor(format Format) Formatter {
	if format == FormatText {
		return NewTextFormatter()
	}
	return NewJSONFormatter()
}

// JSONFormatter writes one JSON object per entry. Fields share the top
// level with the fixed keys and never override them.
type JSONFormatter struct {
	TimestampFormat string
}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	obj := make(map[string]interface{}, len(entry.Fields)+7)
	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		obj[k] = v
	}

	obj["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	obj["level"] = entry.Level.String()
	obj["message"] = entry.Message
	setIf(obj, "logger", entry.Logger)
	setIf(obj, "correlation_id", entry.CorrelationID)
	if entry.Error != nil {
		obj["error"] = entry.Error.Error()
	}
	if entry.Caller != nil {
		obj["caller"] = entry.Caller.String()
	}

	line, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("log: encode entry: %w", err)
	}
	return append(line, '\n'), nil
}

func setIf(obj map[string]interface{}, key, value string) {
	if value != "" {
		obj[key] = value
	}
}

// TextFormatter writes
//
//	15:04:05 [WRN] {name} (corr=id) message [k=v ...] error="..." caller=file:line
//
// leaving out the parts an entry does not have.
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	if !f.DisableTimestamp {
		b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
		b.WriteByte(' ')
	}
	b.WriteString("[" + entry.Level.ShortString() + "]")

	if entry.Logger != "" {
		b.WriteString(" {" + entry.Logger + "}")
	}
	if entry.CorrelationID != "" {
		b.WriteString(" (corr=" + entry.CorrelationID + ")")
	}
	b.WriteString(" " + entry.Message)

	if len(entry.Fields) > 0 {
		b.WriteString(" [")
		for i, k := range entry.Fields.Keys() {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s=%v", k, entry.Fields[k])
		}
		b.WriteByte(']')
	}

	if entry.Error != nil {
		b.WriteString(" error=" + strconv.Quote(entry.Error.Error()))
	}
	if entry.Caller != nil {
		b.WriteString(" caller=" + entry.Caller.String())
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}
