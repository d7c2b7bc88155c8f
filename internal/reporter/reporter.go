// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     reporter
// Description: Fatal diagnostics and process exit status mapping
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package reporter

import (
	"fmt"
	"io"
	"os"

	exfclog "github.com/msto63/exfc/foundation/core/log"
	"github.com/msto63/exfc/pkg/core/logging"
	"github.com/msto63/exfc/pkg/exception"
)

// Diagnostic formats
const (
	detailedFormat = "Threw the %s:\n\tat %s:%d, func %s\n\"%s\"\n"
	defaultFormat  = "Threw the %s\n"
)

// ExitGeneric is the status for errors that carry no exception record
const ExitGeneric = 1

// Reporter writes diagnostics and terminates the process
type Reporter struct {
	out    io.Writer
	exit   func(code int)
	logger *exfclog.Logger
}

// Option configures a Reporter
type Option func(*Reporter)

// WithOutput replaces the error stream
func WithOutput(w io.Writer) Option {
	return func(r *Reporter) { r.out = w }
}

// WithExit replaces process termination
func WithExit(exit func(code int)) Option {
	return func(r *Reporter) { r.exit = exit }
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *exfclog.Logger) Option {
	return func(r *Reporter) { r.logger = logger.WithName("reporter") }
}

// New creates a reporter writing to stderr and exiting with os.Exit
func New(opts ...Option) *Reporter {
	r := &Reporter{
		out:    os.Stderr,
		exit:   os.Exit,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Raise writes the diagnostic for rec and exits with rec.ID. A record whose
// id is not positive exits with ExitGeneric so a raised exception never
// reports success.
//
// Without a message only the one-line header is written. With a message and
// a location the detailed form with file, line, function and description
// precedes the message. A message without a location follows the one-line
// header.
func (r *Reporter) Raise(rec exception.Record, loc exception.Location, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	switch {
	case message == "":
		fmt.Fprintf(r.out, defaultFormat, rec.Name)
	case loc.IsZero():
		fmt.Fprintf(r.out, defaultFormat, rec.Name)
		fmt.Fprintln(r.out, message)
	default:
		fmt.Fprintf(r.out, detailedFormat, rec.Name, loc.File, loc.Line, loc.Function, rec.Description)
		fmt.Fprintln(r.out, message)
	}

	code := exitStatus(rec)
	r.logger.Debug("raising exception", exfclog.Fields{
		"exception": rec.Name,
		"exit_code": code,
	})
	r.exit(code)
}

func exitStatus(rec exception.Record) int {
	if rec.ID <= 0 {
		return ExitGeneric
	}
	return rec.ID
}

// RaiseFatal logs f with its foundation code and raises the exception it
// carries.
func (r *Reporter) RaiseFatal(f *exception.Fatal) {
	r.logger.LogError(f)
	r.Raise(f.Exception, f.Location, "%s", f.Message)
}

// Handle terminates the process for err. A *exception.Fatal in the chain is
// raised with its exception id; any other error is printed and exits with
// ExitGeneric. A nil error does nothing.
func (r *Reporter) Handle(err error) {
	if err == nil {
		return
	}

	if fatal, ok := exception.AsFatal(err); ok {
		r.RaiseFatal(fatal)
		return
	}

	r.logger.LogError(err)
	fmt.Fprintf(r.out, "exfc: %v\n", err)
	r.exit(ExitGeneric)
}
