package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"ok", http.StatusOK, "INFO"},
		{"client error", http.StatusNotFound, "WARN"},
		{"server error", http.StatusServiceUnavailable, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			engine := gin.New()
			engine.Use(Logging(slog.New(slog.NewJSONHandler(&buf, nil))), RequestID())
			engine.GET("/saved/:id", func(c *gin.Context) { c.Status(tt.status) })

			req := httptest.NewRequest(http.MethodGet, "/saved/abc?wait=true", nil)
			req.Header.Set(HeaderRequestID, "req-1")
			engine.ServeHTTP(httptest.NewRecorder(), req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			assert.Equal(t, "request completed", entry["msg"])
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "/saved/:id", entry["route"])
			assert.Equal(t, "/saved/abc", entry["path"])
			assert.Equal(t, "wait=true", entry["query"])
			assert.InDelta(t, tt.status, entry["status"], 0)
			assert.Equal(t, "req-1", entry["request_id"])
		})
	}
}

func TestLogging_SkipsProbes(t *testing.T) {
	var buf bytes.Buffer

	engine := gin.New()
	engine.Use(Logging(slog.New(slog.NewJSONHandler(&buf, nil))))
	engine.GET("/-/ready", func(c *gin.Context) { c.Status(http.StatusOK) })

	engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/-/ready", nil))

	assert.Empty(t, buf.String())
}

func TestLogging_RecordsGinErrors(t *testing.T) {
	var buf bytes.Buffer

	engine := gin.New()
	engine.Use(Logging(slog.New(slog.NewJSONHandler(&buf, nil))))
	engine.GET("/today", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
		c.Status(http.StatusBadGateway)
	})

	engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/today", nil))

	assert.Contains(t, buf.String(), assert.AnError.Error())
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelFor(http.StatusAccepted))
	assert.Equal(t, slog.LevelWarn, levelFor(http.StatusBadRequest))
	assert.Equal(t, slog.LevelError, levelFor(http.StatusInternalServerError))
}
