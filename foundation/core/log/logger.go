// File: logger.go
// Title: Logger
// Description: Immutable structured loggers sharing a serialized sink, with
//              severity aware logging of foundation errors.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-12 v0.2.0: Synchronous only, stderr default, correlation IDs
// - 2026-10-16 v0.3.0: Immutable loggers over a shared sink, atomic default

package log

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	exfcerror "github.com/msto63/exfc/foundation/core/error"
)

// sink serializes writes of every logger derived from the same root
type sink struct {
	mu        sync.Mutex
	out       io.Writer
	formatter Formatter
}

func (s *sink) write(entry *Entry) {
	line, err := s.formatter.Format(entry)
	if err != nil {
		return
	}
	s.mu.Lock()
	_, _ = s.out.Write(line)
	s.mu.Unlock()
}

// Logger writes leveled entries. A Logger is never modified after
// construction; the With* methods return derived copies that share the
// output of their parent.
type Logger struct {
	sink          *sink
	level         Level
	name          string
	correlationID string
	fields        Fields

	caller     bool
	callerSkip int
}

// Config configures NewWithConfig
type Config struct {
	Level  Level
	Format Format

	// Output defaults to stderr
	Output io.Writer
	Name   string

	EnableCaller bool

	// CallerSkipFrames skips wrapper frames when reporting the caller
	CallerSkipFrames int
}

// New returns a JSON logger on stderr at the default level
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatJSON})
}

// NewWithConfig builds a root logger
func NewWithConfig(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		sink:       &sink{out: out, formatter: FormatterFor(cfg.Format)},
		level:      cfg.Level,
		name:       cfg.Name,
		fields:     Fields{},
		caller:     cfg.EnableCaller,
		callerSkip: cfg.CallerSkipFrames,
	}
}

func (l *Logger) derive(change func(*Logger)) *Logger {
	c := *l
	c.fields = Fields{}.Merge(l.fields)
	change(&c)
	return &c
}

// WithLevel returns a copy with threshold level
func (l *Logger) WithLevel(level Level) *Logger {
	return l.derive(func(c *Logger) { c.level = level })
}

// WithName returns a copy reporting name as logger
func (l *Logger) WithName(name string) *Logger {
	return l.derive(func(c *Logger) { c.name = name })
}

// WithCorrelationID returns a copy stamping every entry with id
func (l *Logger) WithCorrelationID(id string) *Logger {
	return l.derive(func(c *Logger) { c.correlationID = id })
}

// WithField returns a copy adding key=value to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.derive(func(c *Logger) { c.fields[key] = value })
}

// WithFields returns a copy adding fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	return l.derive(func(c *Logger) { c.fields.absorb(fields) })
}

// WithOutput returns a copy writing to out with its own sink
func (l *Logger) WithOutput(out io.Writer) *Logger {
	return l.derive(func(c *Logger) {
		c.sink = &sink{out: out, formatter: l.sink.formatter}
	})
}

// GetLevel returns the threshold
func (l *Logger) GetLevel() Level {
	return l.level
}

// Enabled reports whether entries at level are written
func (l *Logger) Enabled(level Level) bool {
	return level.Enabled(l.level)
}

func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields)
}

func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields)
}

func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields)
}

func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields)
}

func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields)
}

// ErrorWithErr logs message at error level with err attached
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields)
}

// LogError logs err with its code, severity and operation. The level follows
// the severity: low is debug, medium is warn, critical is fatal and
// everything else, including errors outside the foundation, is error.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var fe *exfcerror.Error
	if !errors.As(err, &fe) {
		l.log(LevelError, err.Error(), err, nil)
		return
	}

	fields := Fields{
		"error_code":     fe.Code().String(),
		"error_severity": fe.Severity().String(),
	}
	if op := fe.Operation(); op != "" {
		fields["error_operation"] = op
	}

	level := LevelError
	switch fe.Severity() {
	case exfcerror.SeverityLow:
		level = LevelDebug
	case exfcerror.SeverityMedium:
		level = LevelWarn
	case exfcerror.SeverityCritical:
		level = LevelFatal
	}
	l.log(level, err.Error(), err, []Fields{fields})
}

func (l *Logger) log(level Level, message string, err error, fields []Fields) {
	if !l.Enabled(level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err
	entry.Fields = l.fields.Merge(fields...)
	if l.caller {
		entry.Caller = l.callerInfo()
	}

	l.sink.write(entry)
}

// callerInfo reports the frame that called the exported logging method
func (l *Logger) callerInfo() *CallerInfo {
	var pcs [1]uintptr
	// runtime.Callers, callerInfo, log, exported method
	if runtime.Callers(4+l.callerSkip, pcs[:]) == 0 {
		return nil
	}

	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	fn := frame.Function
	if i := strings.LastIndex(fn, "."); i >= 0 {
		fn = fn[i+1:]
	}
	return &CallerInfo{
		Function: fn,
		File:     filepath.Base(frame.File),
		Line:     frame.Line,
	}
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New())
}

// GetDefault returns the package level logger
func GetDefault() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the package level logger. nil is ignored.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
