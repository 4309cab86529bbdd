package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"openhiring/internal/session"
	"openhiring/internal/store"
	"openhiring/pkg/models"
)

var startTime = time.Now()

// HealthHandler reports service health including database and redis
// connectivity.
func HealthHandler(st *store.Store, sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		checks := make(map[string]string)
		status := "healthy"

		if err := st.Ping(ctx); err != nil {
			checks["database"] = "unhealthy: " + err.Error()
			status = "degraded"
		} else {
			checks["database"] = "healthy"
		}

		if err := sessions.Ping(ctx); err != nil {
			checks["redis"] = "unhealthy: " + err.Error()
			status = "degraded"
		} else {
			checks["redis"] = "healthy"
		}

		code := http.StatusOK
		if status != "healthy" {
			code = http.StatusServiceUnavailable
		}

		return c.JSON(code, models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}

// LivenessHandler is the minimal liveness probe.
func LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "alive"})
}
