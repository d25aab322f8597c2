package handler

import (
	"net/http"

	"github.com/planviz/planviz/internal/api/response"
)

// SystemHandler handles system-level endpoints.
type SystemHandler struct {
	version string
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(version string) *SystemHandler {
	return &SystemHandler{version: version}
}

// Health returns the server health status.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}
