package log

import (
	"context"
	"io"
	"log/slog"

	"github.com/agentflowhq/agentflow/internal/errors"
)

// Logger provides structured logging with slog
type Logger struct {
	slog   *slog.Logger
	config Config
}

// New creates a new Logger with the given configuration
func New(config Config) *Logger {
	opts := &slog.HandlerOptions{
		Level:     config.Level.ToSlogLevel(),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(config.Output.Writer(), opts)
	case FormatText:
		handler = slog.NewTextHandler(config.Output.Writer(), opts)
	default:
		handler = slog.NewTextHandler(config.Output.Writer(), opts)
	}

	return &Logger{
		slog:   slog.New(handler),
		config: config,
	}
}

// Default creates a logger with default configuration
func Default() *Logger {
	return New(DefaultConfig())
}

// Development creates a logger with development configuration
func Development() *Logger {
	return New(DevelopmentConfig())
}

// Production creates a logger with production configuration
func Production() *Logger {
	return New(ProductionConfig())
}

// NewNop creates a logger that discards all output
func NewNop() *Logger {
	return New(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: NewOutput(io.Discard),
	})
}

// With returns a new Logger with the given attributes added to all log entries
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slog:   l.slog.With(args...),
		config: l.config,
	}
}

// WithGroup returns a new Logger with a group name that prefixes all attributes
func (l *Logger) WithGroup(name string) *Logger {
	return &Logger{
		slog:   l.slog.WithGroup(name),
		config: l.config,
	}
}

// WithError adds error details to the logger.
// If the error is an AgentflowError, it adds error_code, suggestions and
// any structured diagnostic context.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}

	if afErr, ok := err.(*errors.AgentflowError); ok {
		args := []any{
			"error", afErr.Message,
			"error_code", string(afErr.Code),
		}

		if len(afErr.Suggestions) > 0 {
			args = append(args, "suggestions", afErr.Suggestions)
		}

		for key, value := range afErr.Context {
			args = append(args, key, value)
		}

		if afErr.Cause != nil {
			args = append(args, "cause", afErr.Cause.Error())
		}

		return l.With(args...)
	}

	return l.With("error", err.Error())
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// LogError logs an AgentflowError with full details
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	if afErr, ok := err.(*errors.AgentflowError); ok {
		args := []any{
			"error_code", string(afErr.Code),
			"error_message", afErr.Message,
		}

		if len(afErr.Suggestions) > 0 {
			args = append(args, "suggestions", afErr.Suggestions)
		}

		for key, value := range afErr.Context {
			args = append(args, key, value)
		}

		if afErr.Cause != nil {
			args = append(args, "cause", afErr.Cause.Error())
		}

		l.Error("operation failed", args...)
	} else {
		l.Error("operation failed", "error", err.Error())
	}
}

// Enabled returns whether the logger is enabled for the given level
func (l *Logger) Enabled(ctx context.Context, level Level) bool {
	return l.slog.Enabled(ctx, level.ToSlogLevel())
}

// Handler returns the underlying slog.Handler
func (l *Logger) Handler() slog.Handler {
	return l.slog.Handler()
}

// Config returns the logger configuration
func (l *Logger) Config() Config {
	return l.config
}
