// Package logger holds the program logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Pl holds the global *ProgramLogger variable.
var Pl = New(os.Stderr, 0)

// ProgramLogger wraps a zerolog logger with leveled debug output.
//
// Debug lines are only written when their level is at or below the configured debug level
// (0 - 5). Info, warning, error and success lines are always written.
type ProgramLogger struct {
	zl    zerolog.Logger
	level *atomic.Int32
}

// New returns a ProgramLogger writing human-readable lines to w.
func New(w io.Writer, debugLevel int) *ProgramLogger {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
	}
	lvl := new(atomic.Int32)
	lvl.Store(int32(debugLevel))

	return &ProgramLogger{
		zl:    zerolog.New(cw).With().Timestamp().Str("program", "TubeSonic").Logger(),
		level: lvl,
	}
}

// SetLevel sets the debug level. Values are clamped to 0 - 5.
func (p *ProgramLogger) SetLevel(l int) {
	l = max(0, min(l, 5))
	p.level.Store(int32(l))
}

// Level returns the current debug level.
func (p *ProgramLogger) Level() int {
	return int(p.level.Load())
}

// With returns a child logger carrying the key/value pair on every line.
//
// The child shares the parent's debug level.
func (p *ProgramLogger) With(key, val string) *ProgramLogger {
	return &ProgramLogger{
		zl:    p.zl.With().Str(key, val).Logger(),
		level: p.level,
	}
}

// D logs a debug message if l is within the debug level.
func (p *ProgramLogger) D(l int, format string, args ...any) {
	if l > p.Level() {
		return
	}
	p.zl.Debug().Int("lvl", l).Msg(msg(format, args...))
}

// I logs an info message.
func (p *ProgramLogger) I(format string, args ...any) {
	p.zl.Info().Msg(msg(format, args...))
}

// S logs a success message.
func (p *ProgramLogger) S(format string, args ...any) {
	p.zl.Info().Bool("success", true).Msg(msg(format, args...))
}

// W logs a warning.
func (p *ProgramLogger) W(format string, args ...any) {
	p.zl.Warn().Msg(msg(format, args...))
}

// E logs an error.
func (p *ProgramLogger) E(format string, args ...any) {
	p.zl.Error().Msg(msg(format, args...))
}

func msg(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
