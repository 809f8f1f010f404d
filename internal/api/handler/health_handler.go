package handler

import "net/http"

// Health status values. The handler only ever reports StatusUp: if the
// process cannot respond at all, the orchestrator's probe timeout is the
// failure signal, not a DOWN body.
const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

// HealthResponse is the payload consumed by liveness and readiness probes.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthHandler serves the liveness/readiness probe endpoint.
type HealthHandler struct {
	service string
}

func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service}
}

// Health handles GET /health
//
// @Summary  Liveness and readiness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  handler.HealthResponse
// @Router   /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:  StatusUp,
		Service: h.service,
	})
}
