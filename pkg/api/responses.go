package api

import (
	"github.com/gestion-eventos/briefd/pkg/brief"
	"github.com/gestion-eventos/briefd/pkg/database"
)

// ErrorResponse is the JSON body of every non-2xx answer.
type ErrorResponse struct {
	Error     string `json:"error"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// PreviewResponse is returned by POST /api/v1/briefs/preview.
type PreviewResponse struct {
	FileName string        `json:"file_name"`
	Fields   *brief.Fields `json:"fields"`
}

// HealthCheck is the state of one component.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Checks   map[string]HealthCheck `json:"checks"`
	Database *database.HealthStatus `json:"database,omitempty"`
}
