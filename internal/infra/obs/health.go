package obs

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandlers serves the probe endpoints. Liveness only proves the
// process answers; readiness additionally runs the Ready hook, which the
// bootstrap points at the reservation store's ping when one is configured.
type HealthHandlers struct {
	Ready func() error
}

// Livez always reports ok while the process is serving.
func (h HealthHandlers) Livez(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz reports 503 until the backing store answers. With no Ready hook
// (in-memory storage) the service is ready as soon as it serves.
func (h HealthHandlers) Readyz(c *gin.Context) {
	if h.Ready != nil {
		if err := h.Ready(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
