package api

import (
	"net/http"
)

// ServiceName is reported by the health check.
const ServiceName = "workout-tracker"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HandleHealth handles GET requests to the health check endpoint.
// It is a static liveness report and never touches the store.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: ServiceName,
	})
}
