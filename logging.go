package readably

import "github.com/rs/zerolog"

// Logger is the levelled logging sink the engine emits diagnostics
// through. Emission is best-effort: an implementation must never panic
// back into the pipeline, and the engine must function with a nil/no-op
// sink.
//
// Example usage:
//
//	logger.Debug("scored candidate", map[string]any{"tag": "div", "score": 12.5})
//	logger.Warn("no candidate scored above zero", map[string]any{"url": u})
type Logger interface {
	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// noopLogger discards everything. It is the default sink so that every
// extraction works without a caller wiring up logging.
type noopLogger struct{}

func (noopLogger) Debug(string, map[string]any) {}
func (noopLogger) Info(string, map[string]any)  {}
func (noopLogger) Warn(string, map[string]any)  {}
func (noopLogger) Error(string, map[string]any) {}

// zerologLogger adapts zerolog.Logger to the Logger interface.
type zerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger wraps a zerolog.Logger as a Logger sink.
func NewZerologLogger(log zerolog.Logger) Logger {
	return &zerologLogger{log: log}
}

func (z *zerologLogger) event(e *zerolog.Event, msg string, fields map[string]any) {
	for k, v := range fields {
		e = e.Interface(k, v)
	}
	e.Msg(msg)
}

func (z *zerologLogger) Debug(msg string, fields map[string]any) {
	z.event(z.log.Debug(), msg, fields)
}

func (z *zerologLogger) Info(msg string, fields map[string]any) {
	z.event(z.log.Info(), msg, fields)
}

func (z *zerologLogger) Warn(msg string, fields map[string]any) {
	z.event(z.log.Warn(), msg, fields)
}

func (z *zerologLogger) Error(msg string, fields map[string]any) {
	z.event(z.log.Error(), msg, fields)
}
