package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	modelVersion string
	ocrEnabled   bool
}

// NewHealthHandler creates a new HealthHandler. An empty modelVersion means
// the model artifacts are not loaded.
func NewHealthHandler(modelVersion string, ocrEnabled bool) *HealthHandler {
	return &HealthHandler{modelVersion: modelVersion, ocrEnabled: ocrEnabled}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Failure 503 {object} ReadinessResponse "Model not loaded"
// @Router /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.modelVersion == "" {
		c.JSON(http.StatusServiceUnavailable, ReadinessResponse{
			Status:     "unavailable",
			OCREnabled: h.ocrEnabled,
			Error:      "model not loaded",
		})
		return
	}
	c.JSON(http.StatusOK, ReadinessResponse{
		Status:       "ok",
		ModelVersion: h.modelVersion,
		OCREnabled:   h.ocrEnabled,
	})
}
