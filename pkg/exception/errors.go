// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     exception
// Description: Recoverable registry outcomes
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package exception

import (
	"errors"

	exfcerror "github.com/msto63/exfc/foundation/core/error"
)

// Recoverable outcomes. Registry methods return them wrapped in a foundation
// error; use errors.Is to branch on them.
var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicate       = errors.New("duplicate")
	ErrFull            = errors.New("registry full")
	ErrRejected        = errors.New("rejected")
	ErrInvalidArgument = errors.New("invalid argument")
)

// codeFor maps a sentinel to its foundation error code
func codeFor(sentinel error) exfcerror.Code {
	switch sentinel {
	case ErrNotFound:
		return exfcerror.CodeNotFound
	case ErrDuplicate:
		return exfcerror.CodeDuplicateEntry
	case ErrFull:
		return exfcerror.CodeCapacityExceeded
	case ErrRejected:
		return exfcerror.CodeRejected
	case ErrInvalidArgument:
		return exfcerror.CodeInvalidInput
	default:
		return exfcerror.CodeUnknown
	}
}

// outcome wraps sentinel with the operation name and message
func outcome(sentinel error, op, message string) *exfcerror.Error {
	return exfcerror.Wrap(sentinel, message).
		WithCode(codeFor(sentinel)).
		WithOperation(op)
}
