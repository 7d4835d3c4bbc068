// Package log exposes the logging contract used by the schedm library.
//
// Every operation in the library logs through [Logger]. When no logger is set
// in the configuration, [Noop] is used and nothing is emitted.
//
// Bridging to your own logger only requires implementing [Logger], e.g. on
// top of log/slog:
//
//	type slogAdapter struct{ l *slog.Logger }
//
//	func (a slogAdapter) Infof(format string, args ...any)  { a.l.Info(fmt.Sprintf(format, args...)) }
//	func (a slogAdapter) Errorf(format string, args ...any) { a.l.Error(fmt.Sprintf(format, args...)) }
//	// ... remaining methods
package log

import "github.com/schedm/schedm/internal/log"

// Logger is the logging interface the library calls into. Structured fields
// are attached with [Kv] and carried through derived loggers.
type Logger = log.Logger

// Kv holds structured logging key-value pairs.
type Kv = log.Kv

// Noop discards everything. It is the default when lib.Config has no logger.
var Noop = log.Noop
