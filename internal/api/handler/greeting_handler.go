package handler

import (
	"net/http"
	"time"
)

// GreetingResponse is the payload served on the root route. A new instance
// is built per request; the timestamp is read at handling time.
type GreetingResponse struct {
	Message   string `json:"message"`
	Version   string `json:"version"`
	Timestamp int64  `json:"timestamp"`
}

// GreetingHandler serves the root greeting route.
type GreetingHandler struct {
	message string
	version string
}

func NewGreetingHandler(message, version string) *GreetingHandler {
	return &GreetingHandler{message: message, version: version}
}

// Greet handles GET /
//
// @Summary  Greeting
// @Tags     system
// @Produce  json
// @Success  200  {object}  handler.GreetingResponse
// @Router   / [get]
func (h *GreetingHandler) Greet(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, GreetingResponse{
		Message:   h.message,
		Version:   h.version,
		Timestamp: time.Now().UnixMilli(),
	})
}
