package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{"generated", ""},
		{"propagated", "req-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string

			engine := gin.New()
			engine.Use(RequestID())
			engine.GET("/today", func(c *gin.Context) {
				seen = RequestIDFromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/today", nil)
			if tt.incoming != "" {
				req.Header.Set(HeaderRequestID, tt.incoming)
			}

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			echoed := w.Header().Get(HeaderRequestID)
			assert.Equal(t, seen, echoed)

			if tt.incoming == "" {
				assert.NoError(t, uuid.Validate(echoed))
			} else {
				assert.Equal(t, tt.incoming, echoed)
			}
		})
	}
}

func TestCorrelationID_TagsLogger(t *testing.T) {
	var buf bytes.Buffer

	engine := gin.New()
	engine.Use(Logging(slog.New(slog.NewJSONHandler(&buf, nil))), CorrelationID())
	engine.GET("/saved", func(c *gin.Context) {
		ctx := c.Request.Context()
		assert.Equal(t, "corr-9", CorrelationIDFromContext(ctx))
		assert.Empty(t, RequestIDFromContext(ctx))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/saved", nil)
	req.Header.Set(HeaderCorrelationID, "corr-9")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, "corr-9", w.Header().Get(HeaderCorrelationID))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "corr-9", entry["correlation_id"])
}

func TestContextWithIDs(t *testing.T) {
	ctx := ContextWithCorrelationID(ContextWithRequestID(context.Background(), "r"), "c")

	assert.Equal(t, "r", RequestIDFromContext(ctx))
	assert.Equal(t, "c", CorrelationIDFromContext(ctx))
	assert.Empty(t, RequestIDFromContext(nil)) //nolint:staticcheck // nil guard
	assert.False(t, logging.Has(ctx))
}
