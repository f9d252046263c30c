package logging

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"purchase-report/internal/config"
)

// TraceIDContextKey mirrors the key the request ID middleware stores the trace ID under.
const TraceIDContextKey = "trace_id"

type traceIDKey struct{}

// Configure points the package-level logrus logger at the configured format and level
// and returns it. Production gets JSON lines, everything else gets human-readable text.
// LOG_FORMAT overrides the choice.
func Configure(cfg *config.Config) *logrus.Logger {
	logger := logrus.StandardLogger()
	apply(logger, cfg)
	return logger
}

func apply(logger *logrus.Logger, cfg *config.Config) {
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	format := strings.ToLower(cfg.Log.Format)
	if format == "" {
		format = "text"
		if cfg.IsProduction() {
			format = "json"
		}
	}

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

// NewDiagnosticLogger returns the logger behind the check endpoint's diagnostic stream.
// Lines carry the message only, so they read like plain console output.
func NewDiagnosticLogger(out io.Writer) *logrus.Logger {
	return &logrus.Logger{
		Out:       out,
		Formatter: messageFormatter{},
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.InfoLevel,
	}
}

type messageFormatter struct{}

func (messageFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return []byte(entry.Message + "\n"), nil
}

// WithTraceID returns a copy of ctx carrying the request's trace ID
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceID returns the trace ID stored by WithTraceID, or "".
func TraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDKey{}).(string)
	return traceID
}

// FromContext tags logger with the trace ID carried by ctx, if any.
// Code below the HTTP layer logs through it so lines can be joined with the request log.
func FromContext(ctx context.Context, logger logrus.FieldLogger) logrus.FieldLogger {
	if traceID := TraceID(ctx); traceID != "" {
		return logger.WithField("trace_id", traceID)
	}
	return logger
}

// ForRequest returns an entry tagged with the request's trace ID.
func ForRequest(logger logrus.FieldLogger, c echo.Context) *logrus.Entry {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return logger.WithFields(logrus.Fields{
		"trace_id": traceID,
		"method":   c.Request().Method,
		"path":     c.Request().URL.Path,
	})
}
