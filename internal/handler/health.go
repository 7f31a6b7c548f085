package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/deppfellow/timesheet/internal/middleware"
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler serves /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]HealthCheck `json:"checks"`
}

type HealthCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

var errNotConfigured = errors.New("not configured")

// CheckHealth pings Postgres and Redis. Any failing check answers 503.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]HealthCheck),
	}

	checks := map[string]func(ctx context.Context) error{
		"database": func(ctx context.Context) error {
			if h.server.DB == nil || h.server.DB.Pool == nil {
				return errNotConfigured
			}
			return h.server.DB.Pool.Ping(ctx)
		},
		"redis": func(ctx context.Context) error {
			if h.server.Redis == nil {
				return errNotConfigured
			}
			return h.server.Redis.Ping(ctx).Err()
		},
	}

	obs := h.server.Config.Observability
	for name, ping := range checks {
		if obs == nil || !obs.HealthCheckEnabled(name) {
			continue
		}

		result := h.runCheck(c.Request().Context(), name, ping)
		response.Checks[name] = result
		if result.Status != "healthy" {
			response.Status = "unhealthy"
		}
	}

	if response.Status != "healthy" {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) runCheck(parent context.Context, name string, ping func(ctx context.Context) error) HealthCheck {
	timeout := 5 * time.Second
	if obs := h.server.Config.Observability; obs != nil && obs.HealthChecks.Timeout > 0 {
		timeout = obs.HealthChecks.Timeout
	}

	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	checkStart := time.Now()
	err := ping(ctx)
	elapsed := time.Since(checkStart)

	if err == nil {
		return HealthCheck{Status: "healthy", ResponseTime: elapsed.String()}
	}

	h.server.Logger.Error().
		Err(err).
		Str("check", name).
		Dur("response_time", elapsed).
		Msg("dependency health check failed")

	if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
		h.server.LoggerService.GetApplication().RecordCustomEvent(
			"HealthCheckError",
			map[string]interface{}{
				"check_type":       name,
				"operation":        "health_check",
				"error_type":       name + "_unhealthy",
				"response_time_ms": elapsed.Milliseconds(),
				"error_message":    err.Error(),
			},
		)
	}

	return HealthCheck{Status: "unhealthy", ResponseTime: elapsed.String(), Error: err.Error()}
}
