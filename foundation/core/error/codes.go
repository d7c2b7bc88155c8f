// File: codes.go
// Title: Error Codes
// Description: The closed set of codes classifying registry outcomes, fatal
//              conditions and configuration problems. Each code has one
//              category and one default severity, kept in a single table.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-12 v0.2.0: Reduced to the exception registry domain
// - 2026-10-16 v0.3.0: Single code table, typed categories

package error

// Code classifies an Error
type Code string

const (
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Recoverable registry outcomes
	CodeNotFound         Code = "NOT_FOUND"
	CodeDuplicateEntry   Code = "DUPLICATE_ENTRY"
	CodeCapacityExceeded Code = "CAPACITY_EXCEEDED"
	CodeRejected         Code = "REJECTED"
	CodeInvalidInput     Code = "INVALID_INPUT"

	// Fatal conditions
	CodeBufferOverflow Code = "BUFFER_OVERFLOW"
	CodeNullReference  Code = "NULL_REFERENCE"
	CodeUninitialized  Code = "UNINITIALIZED"

	// Configuration and input files
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeInvalidFormat Code = "INVALID_FORMAT"
)

// Category groups codes
type Category string

const (
	CategoryGeneric       Category = "generic"
	CategoryRegistry      Category = "registry"
	CategoryFatal         Category = "fatal"
	CategoryConfiguration Category = "configuration"
)

type codeInfo struct {
	category Category
	severity Severity
}

var codeTable = map[Code]codeInfo{
	CodeUnknown:  {CategoryGeneric, SeverityMedium},
	CodeInternal: {CategoryGeneric, SeverityMedium},

	CodeNotFound:         {CategoryRegistry, SeverityLow},
	CodeDuplicateEntry:   {CategoryRegistry, SeverityLow},
	CodeCapacityExceeded: {CategoryRegistry, SeverityLow},
	CodeRejected:         {CategoryRegistry, SeverityLow},
	CodeInvalidInput:     {CategoryRegistry, SeverityLow},

	CodeBufferOverflow: {CategoryFatal, SeverityCritical},
	CodeNullReference:  {CategoryFatal, SeverityCritical},
	CodeUninitialized:  {CategoryFatal, SeverityCritical},

	CodeConfigError:   {CategoryConfiguration, SeverityHigh},
	CodeMissingConfig: {CategoryConfiguration, SeverityHigh},
	CodeInvalidConfig: {CategoryConfiguration, SeverityHigh},
	CodeInvalidFormat: {CategoryConfiguration, SeverityHigh},
}

func (c Code) String() string {
	return string(c)
}

// IsValid reports whether c is one of the declared codes
func (c Code) IsValid() bool {
	_, ok := codeTable[c]
	return ok
}

// Category returns the group of c; undeclared codes are generic
func (c Code) Category() Category {
	if info, ok := codeTable[c]; ok {
		return info.category
	}
	return CategoryGeneric
}

// IsRecoverable reports whether callers are expected to branch on the code
// instead of terminating.
func (c Code) IsRecoverable() bool {
	return c.Category() != CategoryFatal
}
