// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     exception
// Description: Fatal signal raised for contract violations
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package exception

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	exfcerror "github.com/msto63/exfc/foundation/core/error"
)

// Location is the source position that triggered a fatal condition
type Location struct {
	File     string
	Line     int
	Function string
}

// IsZero reports whether no location was recorded
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Function == ""
}

// String returns file:line
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Fatal is returned for conditions a registry cannot continue past. The
// process is expected to terminate with Exception.ID as its exit status.
// Fatals built by NewFatal unwrap to a critical foundation error whose code
// names the condition.
type Fatal struct {
	Exception Record
	Location  Location
	Message   string

	cause *exfcerror.Error
}

// NewFatal builds the fatal signal raising rec at loc
func NewFatal(rec Record, loc Location, message string) *Fatal {
	return &Fatal{
		Exception: rec,
		Location:  loc,
		Message:   message,
		cause: exfcerror.New(message).
			WithCode(fatalCode(rec)).
			WithSeverity(exfcerror.SeverityCritical).
			WithOperation("exception.Raise").
			WithDetail("exception", rec.Name).
			WithDetail("id", rec.ID),
	}
}

// Error implements the error interface
func (f *Fatal) Error() string {
	if f.Message == "" {
		return f.Exception.Name
	}
	return f.Exception.Name + ": " + f.Message
}

// Unwrap returns the foundation error describing the condition
func (f *Fatal) Unwrap() error {
	if f.cause == nil {
		return nil
	}
	return f.cause
}

// Code returns the foundation code of the condition
func (f *Fatal) Code() exfcerror.Code {
	return fatalCode(f.Exception)
}

// fatalCode maps the builtins raised by the registry itself to their codes.
// Every other exception is an internal error.
func fatalCode(rec Record) exfcerror.Code {
	switch rec.Name {
	case KindBufferOverflow.String():
		return exfcerror.CodeBufferOverflow
	case KindInvalidNullPointer.String():
		return exfcerror.CodeNullReference
	case KindInstanceFailure.String():
		return exfcerror.CodeUninitialized
	default:
		return exfcerror.CodeInternal
	}
}

// IsFatal reports whether err carries a *Fatal
func IsFatal(err error) bool {
	var fatal *Fatal
	return errors.As(err, &fatal)
}

// AsFatal extracts the *Fatal from err's chain
func AsFatal(err error) (*Fatal, bool) {
	var fatal *Fatal
	if errors.As(err, &fatal) {
		return fatal, true
	}
	return nil, false
}

// newFatal raises builtin kind located skip frames above itself
func newFatal(kind Kind, offset, skip int, format string, args ...interface{}) *Fatal {
	return NewFatal(Builtin(kind, offset), callerLocation(skip+1), fmt.Sprintf(format, args...))
}

func callerLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{}
	}

	function := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if idx := strings.LastIndex(function, "."); idx != -1 {
			function = function[idx+1:]
		}
	}

	return Location{
		File:     filepath.Base(file),
		Line:     line,
		Function: function,
	}
}
