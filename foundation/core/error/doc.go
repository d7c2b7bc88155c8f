// Package error provides structured error values for the exfc foundation.
//
// Package: error
// Title: exfc Error Handling Framework
// Description: Errors carry a Code from a closed set, a Severity derived from
//              the code, the failing operation, free-form details and the
//              creating stack. They wrap plain sentinel errors so callers can
//              keep using errors.Is.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-12 v0.2.0: Registry codes, errors.As based helpers
// - 2026-10-16 v0.3.0: Code table, %+v formatting
//
// Usage:
//
//	import exfcerror "github.com/msto63/exfc/foundation/core/error"
//
//	err := exfcerror.Wrap(ErrNotFound, "find by name").
//		WithCode(exfcerror.CodeNotFound).
//		WithOperation("Registry.FindByName").
//		WithDetail("name", name)
//
//	if exfcerror.HasCode(err, exfcerror.CodeNotFound) {
//		// branch on the outcome
//	}
package error
