package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// LogLevel represents logging levels
type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// Config holds logger configuration
type Config struct {
	Level       LogLevel
	ServiceName string
	Environment string
	Version     string
	Output      io.Writer
	AddSource   bool
}

// DefaultConfig returns a default logger configuration
func DefaultConfig(serviceName string) *Config {
	return &Config{
		Level:       LevelInfo,
		ServiceName: serviceName,
		Environment: getEnv("ENVIRONMENT", "development"),
		Version:     getEnv("VERSION", "unknown"),
		Output:      os.Stdout,
		AddSource:   false,
	}
}

// Logger wraps slog.Logger with service-wide base attributes
type Logger struct {
	*slog.Logger
	serviceName string
	environment string
	version     string
}

// New creates a new Logger instance emitting JSON
func New(config *Config) *Logger {
	level := slog.LevelInfo
	switch config.Level {
	case LevelDebug:
		level = slog.LevelDebug
	case LevelWarn:
		level = slog.LevelWarn
	case LevelError:
		level = slog.LevelError
	}

	output := config.Output
	if output == nil {
		output = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: config.AddSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.UTC().Format(time.RFC3339Nano))
				}
			}
			return a
		},
	}

	baseLogger := slog.New(slog.NewJSONHandler(output, opts)).With(
		"service", config.ServiceName,
		"environment", config.Environment,
		"version", config.Version,
	)

	return &Logger{
		Logger:      baseLogger,
		serviceName: config.ServiceName,
		environment: config.Environment,
		version:     config.Version,
	}
}

// WithError adds an error to the logger
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return l.with("error", err.Error())
}

// WithComponent adds a component name to the logger
func (l *Logger) WithComponent(component string) *Logger {
	return l.with("component", component)
}

func (l *Logger) with(args ...any) *Logger {
	return &Logger{
		Logger:      l.Logger.With(args...),
		serviceName: l.serviceName,
		environment: l.environment,
		version:     l.version,
	}
}

// Event logs a business event with structured data
func (l *Logger) Event(ctx context.Context, eventType string, data map[string]any) {
	attrs := []any{
		"eventType", eventType,
		"timestamp", time.Now().UTC().Format(time.RFC3339Nano),
	}
	for k, v := range data {
		attrs = append(attrs, k, v)
	}
	l.InfoContext(ctx, "Business event", attrs...)
}

// HTTPRequest logs an HTTP request with standard fields
func (l *Logger) HTTPRequest(ctx context.Context, method, path string, status int, duration time.Duration, clientIP string) {
	level := slog.LevelInfo
	if status >= 500 {
		level = slog.LevelError
	} else if status >= 400 {
		level = slog.LevelWarn
	}

	l.Log(ctx, level, "HTTP request",
		"method", method,
		"path", path,
		"status", status,
		"durationMs", duration.Milliseconds(),
		"clientIP", clientIP,
	)
}

// SetDefault sets this logger as the default slog logger
func (l *Logger) SetDefault() {
	slog.SetDefault(l.Logger)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
