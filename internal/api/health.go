package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status string `json:"status"`
}

// Healthz reports liveness with no side effects.
func (h *Handler) Healthz(c *gin.Context) {
	h.writeJSON(c, http.StatusOK, HealthResponse{Status: "ok"})
}
