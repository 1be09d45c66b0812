package pipe

import (
	"context"
	"log/slog"

	"github.com/ib-77/rpipe/internal/logging"
)

type OptionKey string

const (
	PipeOptionKey     OptionKey = "pipe"
	StrictOptionKey   OptionKey = "strict_options"
	LoggerOptionKey   OptionKey = "logger_options"
	RecorderOptionKey OptionKey = "recorder_options"
)

type StrictOptions struct {
	Enabled bool
}

var nopLogger = logging.NewNop()

// WithStrict enables or disables strict diagnostics for the render.
func WithStrict(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, StrictOptionKey, StrictOptions{Enabled: enabled})
}

func IsStrict(ctx context.Context, defaultStrict bool) bool {
	options, ok := ctx.Value(StrictOptionKey).(StrictOptions)
	if ok {
		return options.Enabled
	}
	return defaultStrict
}

// WithLogger attaches a logger used for debug tracing of chains.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, logger)
}

// LoggerFrom returns the attached logger or a no-op one.
func LoggerFrom(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(LoggerOptionKey).(*slog.Logger)
	if ok && logger != nil {
		return logger
	}
	return nopLogger
}

func WithRecorder(ctx context.Context, recorder Recorder) context.Context {
	return context.WithValue(ctx, RecorderOptionKey, recorder)
}

// RecorderFrom returns the attached recorder or NoopRecorder.
func RecorderFrom(ctx context.Context) Recorder {
	recorder, ok := ctx.Value(RecorderOptionKey).(Recorder)
	if ok && !IsNil(recorder) {
		return recorder
	}
	return NoopRecorder{}
}
