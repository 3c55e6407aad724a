package handlers

import (
	"net/http"

	"portfolio-api/src/schemas"
)

const serviceVersion = "0.1.0"

// GetServiceInfo describes the service and its public endpoints. No auth.
func (h *Handler) GetServiceInfo(w http.ResponseWriter, r *http.Request) {
	info := schemas.ServiceInfoResponse{
		Name:        "Portfolio API",
		Version:     serviceVersion,
		Description: "Serves portfolio data as CSV",
		Endpoints: map[string]string{
			"/":              "Service information",
			"/portfolio/csv": "Get portfolio data as CSV (requires Bearer token)",
			"/health":        "Liveness check",
		},
	}
	h.respond(w, r, info, http.StatusOK)
}

// Healthcheck reports liveness. No auth.
func (h *Handler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, schemas.HealthResponse{Status: "ok"}, http.StatusOK)
}
