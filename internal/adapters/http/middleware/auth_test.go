package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-service/internal/platform/config"
)

var authCfg = config.AuthConfig{
	Enabled:       true,
	SubjectHeader: "X-User-ID",
	ScopesHeader:  "X-User-Scopes",
	WriteScope:    "journal:write",
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.AuthConfig
		subject  string
		scopes   string
		want     int
		wantCode string
	}{
		{"disabled", config.AuthConfig{}, "", "", http.StatusNoContent, ""},
		{"no subject", authCfg, "", "journal:write", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"blank subject", authCfg, "   ", "journal:write", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"missing scope", authCfg, "u1", "journal:read", http.StatusForbidden, "FORBIDDEN"},
		{"granted", authCfg, "u1", "journal:read journal:write", http.StatusNoContent, ""},
		{"any subject when no scope configured", config.AuthConfig{Enabled: true, SubjectHeader: "X-User-ID"}, "u1", "", http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.POST("/saved", RequireAuth(tt.cfg), func(c *gin.Context) {
				if tt.cfg.Enabled {
					claims := GetClaims(c)
					require.NotNil(t, claims)
					assert.Equal(t, tt.subject, claims.Subject)
				}

				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodPost, "/saved", nil)
			req.Header.Set("X-User-ID", tt.subject)
			req.Header.Set("X-User-Scopes", tt.scopes)

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)

			if tt.wantCode != "" {
				assert.Contains(t, w.Body.String(), `"code":"`+tt.wantCode+`"`)
			}
		})
	}
}

func TestExtractClaims(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-User-ID", " u1 ")
	c.Request.Header.Set("X-User-Scopes", "a  b\tc")

	claims := ExtractClaims(c, authCfg)

	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, []string{"a", "b", "c"}, claims.Scopes)
	assert.True(t, claims.HasScope("b"))
	assert.False(t, claims.HasScope("journal:write"))
	assert.Nil(t, GetClaims(c))
}
