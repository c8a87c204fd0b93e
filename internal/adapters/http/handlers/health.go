// Package handlers holds the gin handlers of the quotes API.
package handlers

import (
	"context"
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// BuildInfo describes the running binary. Version, Commit and BuildTime
// are set with -ldflags.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// NewBuildInfo fills GoVersion, and Commit from the embedded VCS stamp when
// it was not injected.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	if commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" {
					commit = s.Value
				}
			}
		}
	}

	return BuildInfo{Version: version, Commit: commit, BuildTime: buildTime, GoVersion: runtime.Version()}
}

// SchemaVersionFunc reports the journal database's migration version.
type SchemaVersionFunc func(ctx context.Context) (int, error)

// HealthHandler serves the /-/ probe routes.
type HealthHandler struct {
	registry ports.HealthRegistry
	build    BuildInfo
	schema   SchemaVersionFunc
}

// NewHealthHandler creates the handler. schema may be nil.
func NewHealthHandler(registry ports.HealthRegistry, build BuildInfo, schema SchemaVersionFunc) *HealthHandler {
	return &HealthHandler{registry: registry, build: build, schema: schema}
}

// Liveness answers 200 while the process runs. It checks nothing.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type readinessResponse struct {
	Status string                        `json:"status"`
	Checks map[string]*ports.CheckResult `json:"checks,omitempty"`
}

// Readiness runs the registered checks (quote upstream, journal database)
// and answers 503 when any fails.
func (h *HealthHandler) Readiness(c *gin.Context) {
	result := h.registry.CheckAll(c.Request.Context())

	status := http.StatusOK
	if result.Status == ports.HealthStatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, readinessResponse{Status: string(result.Status), Checks: result.Checks})
}

type buildResponse struct {
	BuildInfo

	SchemaVersion *int `json:"schemaVersion,omitempty"`
}

// Build reports the build info and, when known, the schema version.
func (h *HealthHandler) Build(c *gin.Context) {
	resp := buildResponse{BuildInfo: h.build}

	if h.schema != nil {
		if v, err := h.schema(c.Request.Context()); err == nil {
			resp.SchemaVersion = &v
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Register mounts live, ready, build and metrics under rg, normally "/-".
func (h *HealthHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/live", h.Liveness)
	rg.GET("/ready", h.Readiness)
	rg.GET("/build", h.Build)
	rg.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
