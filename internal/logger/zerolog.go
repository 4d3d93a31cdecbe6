package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ZerologAdapter writes component-tagged events through zerolog
type ZerologAdapter struct {
	zl zerolog.Logger
}

func NewZerolog(w io.Writer, level LogLevel) *ZerologAdapter {
	return &ZerologAdapter{
		zl: zerolog.New(w).Level(level.toZerolog()).With().Timestamp().Logger(),
	}
}

// NewConsoleLogger writes human-readable lines to stderr, keeping stdout
// free for command output.
func NewConsoleLogger(level LogLevel) *ZerologAdapter {
	return NewZerolog(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}, level)
}

func New(level LogLevel, useJSON bool) *ZerologAdapter {
	if useJSON {
		return NewZerolog(os.Stderr, level)
	}
	return NewConsoleLogger(level)
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	send(z.zl.Info(), component, fields, message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	send(z.zl.Error().Err(err), component, fields, "operation failed")
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	send(z.zl.Warn(), component, fields, message)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	send(z.zl.Debug(), component, fields, message)
}

func send(e *zerolog.Event, component string, fields map[string]interface{}, message string) {
	if e == nil {
		return
	}
	e.Str("component", component).Fields(fields).Msg(message)
}
