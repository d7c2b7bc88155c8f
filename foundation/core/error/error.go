// File: error.go
// Title: Structured Errors
// Description: The Error type carries a code, a severity, the failing
//              operation, details and the creating stack. It wraps plain
//              sentinel errors so errors.Is and errors.As keep working.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-12 v0.2.0: Dropped request/user/i18n context, errors.As based helpers
// - 2026-10-16 v0.3.0: fmt.Formatter instead of String, operation inheritance

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sort"
	"time"
)

// MaxStackFrames limits the number of stack frames captured
const MaxStackFrames = 16

// Error is a structured error built with New or Wrap and configured with the
// With* methods before it is returned.
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	operation string
	details   map[string]interface{}
	timestamp time.Time
	stack     []StackFrame
}

// StackFrame is one captured frame
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// New creates an error with CodeUnknown
func New(message string) *Error {
	return build(message, nil)
}

// Wrap puts message in front of err. When err already carries an *Error its
// code, severity, operation and details are inherited. Wrap(nil, ...) is nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	e := build(message, err)
	var inner *Error
	if errors.As(err, &inner) {
		e.code = inner.code
		e.severity = inner.severity
		e.operation = inner.operation
		for k, v := range inner.details {
			e.details[k] = v
		}
	}
	return e
}

// build is called directly by New and Wrap so the stack starts at their caller
func build(message string, cause error) *Error {
	return &Error{
		message:   message,
		cause:     cause,
		code:      CodeUnknown,
		severity:  GetSeverityFromCode(CodeUnknown),
		details:   map[string]interface{}{},
		timestamp: time.Now(),
		// runtime.Callers, captureStack, build, New/Wrap
		stack: captureStack(4),
	}
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the code and resets the severity to the code's default
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	e.severity = GetSeverityFromCode(code)
	return e
}

// WithSeverity overrides the severity derived from the code
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

func (e *Error) Code() Code { return e.code }
func (e *Error) Severity() Severity { return e.severity }
func (e *Error) Operation() string { return e.operation }
func (e *Error) Timestamp() time.Time { return e.timestamp }
func (e *Error) Message() string { return e.message }
func (e *Error) StackTrace() []StackFrame { return append([]StackFrame(nil), e.stack...) }

// Detail returns a single detail
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// Details returns a copy of all details
func (e *Error) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

// Origin returns the frame that created the error
func (e *Error) Origin() (StackFrame, bool) {
	if len(e.stack) == 0 {
		return StackFrame{}, false
	}
	return e.stack[0], true
}

// Format implements fmt.Formatter. %s and %v print Error(); %+v prints one
// line per attribute followed by the origin frame.
func (e *Error) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('+'):
		e.writeDetailed(s)
	case verb == 'q':
		fmt.Fprintf(s, "%q", e.Error())
	default:
		io.WriteString(s, e.Error())
	}
}

func (e *Error) writeDetailed(w io.Writer) {
	fmt.Fprintf(w, "Error: %s\nCode: %s\nSeverity: %s", e.message, e.code, e.severity)
	if e.operation != "" {
		fmt.Fprintf(w, "\nOperation: %s", e.operation)
	}
	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		io.WriteString(w, "\nDetails: {")
		for i, k := range keys {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			fmt.Fprintf(w, "%s=%v", k, e.details[k])
		}
		io.WriteString(w, "}")
	}
	if e.cause != nil {
		fmt.Fprintf(w, "\nCause: %s", e.cause)
	}
	if frame, ok := e.Origin(); ok {
		fmt.Fprintf(w, "\nAt: %s (%s:%d)", frame.Function, frame.File, frame.Line)
	}
}

type jsonError struct {
	Message   string                 `json:"message"`
	Code      Code                   `json:"code"`
	Severity  Severity               `json:"severity"`
	Timestamp string                 `json:"timestamp"`
	Operation string                 `json:"operation,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Cause     string                 `json:"cause,omitempty"`
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	out := jsonError{
		Message:   e.message,
		Code:      e.code,
		Severity:  e.severity,
		Timestamp: e.timestamp.Format(time.RFC3339),
		Operation: e.operation,
	}
	if len(e.details) > 0 {
		out.Details = e.details
	}
	if e.cause != nil {
		out.Cause = e.cause.Error()
	}
	return json.Marshal(out)
}

func captureStack(skip int) []StackFrame {
	var pcs [MaxStackFrames]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return nil
	}

	stack := make([]StackFrame, 0, n)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		stack = append(stack, StackFrame{Function: frame.Function, File: frame.File, Line: frame.Line})
		if !more {
			return stack
		}
	}
}

// HasCode reports whether the outermost *Error in the chain has code
func HasCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.code == code
}

// GetCode returns the code of the outermost *Error, or CodeUnknown
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

// GetSeverity returns the severity of the outermost *Error, or medium
func GetSeverity(err error) Severity {
	var e *Error
	if errors.As(err, &e) {
		return e.severity
	}
	return SeverityMedium
}
