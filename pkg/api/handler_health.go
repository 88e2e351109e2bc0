package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gestion-eventos/briefd/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// The database is checked only when the event store is enabled.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]HealthCheck{
		"generator": {Status: healthStatusHealthy},
	}
	status := healthStatusHealthy
	resp := &HealthResponse{Version: version.GitCommit, Checks: checks}

	if s.db != nil {
		dbStatus, err := s.db.Health(reqCtx)
		resp.Database = dbStatus
		if err != nil {
			status = healthStatusUnhealthy
			checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
		} else {
			checks["database"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	resp.Status = status
	c.JSON(httpStatus, resp)
}
