// Package middleware provides the Gin middleware chain of the HTTP API.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

// Headers carrying the request and correlation IDs.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	correlationIDKey
)

// idSource describes one ID that is taken from a header or generated.
type idSource struct {
	header string
	key    ctxKey
	logger func(context.Context, string) context.Context
}

// RequestID extracts X-Request-ID or generates one, echoes it on the
// response and adds it to the request context and its logger.
func RequestID() gin.HandlerFunc {
	return propagateID(idSource{header: HeaderRequestID, key: requestIDKey, logger: logging.WithRequestID})
}

// CorrelationID does the same for X-Correlation-ID, which spans a whole
// client transaction rather than one request.
func CorrelationID() gin.HandlerFunc {
	return propagateID(idSource{header: HeaderCorrelationID, key: correlationIDKey, logger: logging.WithCorrelationID})
}

func propagateID(src idSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(src.header)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(src.header, id)

		ctx := context.WithValue(c.Request.Context(), src.key, id)
		c.Request = c.Request.WithContext(src.logger(ctx, id))

		c.Next()
	}
}

// RequestIDFromContext returns the request ID, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	return idFrom(ctx, requestIDKey)
}

// CorrelationIDFromContext returns the correlation ID, or "" outside a request.
func CorrelationIDFromContext(ctx context.Context) string {
	return idFrom(ctx, correlationIDKey)
}

// ContextWithRequestID stores a request ID, for calls made outside the
// middleware chain such as the CLI.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// ContextWithCorrelationID stores a correlation ID.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

func idFrom(ctx context.Context, key ctxKey) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(key).(string)

	return id
}
