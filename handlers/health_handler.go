package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mlanzi/spese-backend/types"
)

// HealthHandler exposes the application health report.
type HealthHandler struct {
	service HealthServiceInterface
}

func NewHealthHandler(service HealthServiceInterface) *HealthHandler {
	return &HealthHandler{service: service}
}

// Check returns the health report. An unreachable database yields 503 so
// load balancers take the instance out of rotation.
func (h *HealthHandler) Check(c *gin.Context) {
	report := h.service.Check(c.Request.Context())

	status := http.StatusOK
	if report.Status == types.HealthStatusDown {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}
