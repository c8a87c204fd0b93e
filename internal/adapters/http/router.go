package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/platform/telemetry"
)

// RouterConfig wires the handlers into the engine. Nil handlers are not
// mounted.
type RouterConfig struct {
	Logger         *slog.Logger
	ServiceName    string
	Auth           config.AuthConfig
	RequestTimeout time.Duration

	Health   *handlers.HealthHandler
	Quotes   *handlers.QuoteHandler
	Saved    *handlers.SavedHandler
	Settings *handlers.SettingsHandler
}

// SetupRouter installs the middleware chain and the routes:
//
//	/-/        probes and metrics, unauthenticated and without deadline
//	/api/v1/   the quotes API; writes pass RequireAuth
//
// The chain runs Recovery, tracing and metrics, Logging, RequestID and
// CorrelationID on every request, then Deadline on the API group.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(middleware.Recovery())
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(
		middleware.Logging(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(func(c *gin.Context) {
		dto.AbortWithCode(c, dto.ErrorCodeNotFound, "no route for "+c.Request.Method+" "+c.Request.URL.Path)
	})
	engine.NoMethod(func(c *gin.Context) {
		dto.AbortWithCode(c, dto.ErrorCodeBadRequest, "method "+c.Request.Method+" not allowed")
	})

	if cfg.Health != nil {
		cfg.Health.Register(engine.Group("/-"))
	}

	api := engine.Group("/api/v1")
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.Deadline(cfg.RequestTimeout))
	}

	write := api.Group("", middleware.RequireAuth(cfg.Auth))

	if cfg.Quotes != nil {
		cfg.Quotes.Register(api, write)
	}

	if cfg.Saved != nil {
		cfg.Saved.Register(api, write)
	}

	if cfg.Settings != nil {
		cfg.Settings.Register(api, write)
	}
}
