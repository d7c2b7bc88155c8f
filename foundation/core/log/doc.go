// Package log provides structured logging for the exfc foundation.
//
// Package: log
// Title: exfc Structured Logging
// Description: Leveled, field based logging with JSON and text output and
//              integration with the foundation error package. Loggers are
//              immutable: the With* methods return configured copies.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-12 v0.2.0: Synchronous logger, correlation IDs, stderr default
// - 2026-10-16 v0.3.0: Loggers share one serialized sink per root
//
// Usage:
//
//	import exfclog "github.com/msto63/exfc/foundation/core/log"
//
//	logger := exfclog.NewWithConfig(exfclog.Config{
//		Level:  exfclog.LevelInfo,
//		Format: exfclog.FormatText,
//	}).WithName("catalog")
//
//	logger.Info("catalog loaded", exfclog.Int("records", n))
//	logger.LogError(err)
package log
