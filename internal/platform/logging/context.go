package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

type loggerKey struct{}

var fallback atomic.Pointer[slog.Logger]

func init() {
	fallback.Store(slog.Default())
}

// FromContext returns the request-scoped logger, or the process default.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}

	return fallback.Load()
}

// Has reports whether ctx carries its own logger.
func Has(ctx context.Context) bool {
	if ctx == nil {
		return false
	}

	_, ok := ctx.Value(loggerKey{}).(*slog.Logger)

	return ok
}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// With returns ctx carrying the context logger enriched with attrs.
func With(ctx context.Context, attrs ...any) context.Context {
	return WithContext(ctx, FromContext(ctx).With(attrs...))
}

// WithRequestID tags the context logger with request_id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return With(ctx, slog.String("request_id", id))
}

// WithCorrelationID tags the context logger with correlation_id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return With(ctx, slog.String("correlation_id", id))
}

// WithSubject tags the context logger with the authenticated caller.
func WithSubject(ctx context.Context, subject string) context.Context {
	return With(ctx, slog.String("subject", subject))
}

// WithSavedQuoteID tags the context logger with the journal entry being
// operated on.
func WithSavedQuoteID(ctx context.Context, id string) context.Context {
	return With(ctx, slog.String("saved_quote_id", id))
}

// SetDefault installs logger as both the fallback and the slog default.
func SetDefault(logger *slog.Logger) {
	fallback.Store(logger)
	slog.SetDefault(logger)
}
