package middleware

import (
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

// ContextKeyClaims is the gin context key the claims are stored under.
const ContextKeyClaims = "claims"

// Claims are the identity headers set by the fronting gateway after it
// validated the caller's token.
type Claims struct {
	Subject string
	Scopes  []string
}

// HasScope reports whether scope was granted.
func (c *Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

// ExtractClaims reads the configured subject and scope headers. Scopes
// are space separated.
func ExtractClaims(c *gin.Context, cfg config.AuthConfig) *Claims {
	return &Claims{
		Subject: strings.TrimSpace(c.GetHeader(cfg.SubjectHeader)),
		Scopes:  strings.Fields(c.GetHeader(cfg.ScopesHeader)),
	}
}

// GetClaims returns the claims stored by RequireAuth, or nil.
func GetClaims(c *gin.Context) *Claims {
	if v, ok := c.Get(ContextKeyClaims); ok {
		if claims, ok := v.(*Claims); ok {
			return claims
		}
	}

	return nil
}

// RequireAuth guards journal writes. When auth is disabled it is a no-op.
// Otherwise a subject is required, and so is cfg.WriteScope when set.
func RequireAuth(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()

			return
		}

		claims := ExtractClaims(c, cfg)
		if claims.Subject == "" {
			dto.AbortWithCode(c, dto.ErrorCodeUnauthorized, "authentication required")

			return
		}

		if cfg.WriteScope != "" && !claims.HasScope(cfg.WriteScope) {
			dto.AbortWithCode(c, dto.ErrorCodeForbidden, "missing scope "+cfg.WriteScope)

			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Request = c.Request.WithContext(logging.WithSubject(c.Request.Context(), claims.Subject))

		c.Next()
	}
}
