package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/stkpush/internal/pkg/logger"
	"github.com/piresc/stkpush/internal/pkg/models"
	"github.com/piresc/stkpush/internal/utils"
)

// DatabaseChecker is the checker name /api/status probes
const DatabaseChecker = "postgres"

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// DefaultBuildInfo contains default build information
var DefaultBuildInfo = BuildInfo{
	Version:   "development",
	GitCommit: "unknown",
	BuildTime: "unknown",
	GoVersion: runtime.Version(),
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := DefaultBuildInfo
	buildInfo.ServiceName = serviceName
	buildInfo.Hostname = hostname

	if version := os.Getenv("VERSION"); version != "" {
		buildInfo.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		buildInfo.GitCommit = gitCommit
	}
	if buildTime := os.Getenv("BUILD_TIME"); buildTime != "" {
		buildInfo.BuildTime = buildTime
	}

	return func(c echo.Context) error {
		info := buildInfo
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	}
}

// NewLivenessHandler answers GET /health
func NewLivenessHandler(cfg *models.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		return utils.SuccessResponse(c, http.StatusOK, "service healthy", map[string]interface{}{
			"service": cfg.App.Name,
			"debug":   cfg.App.Debug,
		})
	}
}

// NewStatusHandler answers GET /api/status by pinging the database
func NewStatusHandler(service *HealthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		if err := service.Check(ctx, DatabaseChecker); err != nil {
			logger.ErrorCtx(ctx, "Database status check failed", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Database connection failed", err.Error())
		}
		return utils.SuccessResponse(c, http.StatusOK, "Backend and DB reachable", map[string]interface{}{
			"db": true,
		})
	}
}

// NewDetailedHandler answers GET /health/detailed with every dependency
func NewDetailedHandler(cfg *models.Config, service *HealthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		response := service.CheckAllHealth(ctx)
		response.Service = cfg.App.Name
		response.Version = cfg.App.Version

		if !response.Healthy() {
			return utils.ErrorResponseHandler(c, http.StatusServiceUnavailable, "service unhealthy", "", response)
		}
		return utils.SuccessResponse(c, http.StatusOK, "service healthy", response)
	}
}

// RegisterHealthEndpoints registers the health check endpoints
func RegisterHealthEndpoints(e *echo.Echo, cfg *models.Config, service *HealthService) {
	e.GET("/ping", NewPingHandler(cfg.App.Name))
	e.GET("/health", NewLivenessHandler(cfg))
	e.GET("/health/", NewLivenessHandler(cfg))
	e.GET("/health/detailed", NewDetailedHandler(cfg, service))
	e.GET("/api/status", NewStatusHandler(service))
	e.GET("/api/status/", NewStatusHandler(service))
}
