package handlers

import (
	"net/http"

	"localpro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthHandler struct {
	Deps map[string]utils.Pinger
}

func NewHealthHandler(deps map[string]utils.Pinger) *HealthHandler {
	return &HealthHandler{Deps: deps}
}

// CheckHandler handles GET /health. Any unreachable dependency turns the
// response into a 503.
func (h *HealthHandler) CheckHandler(c *gin.Context) {
	status := utils.CheckHealth(c.Request.Context(), h.Deps)
	if !status.Healthy {
		getLogger(c).Warn("Health check failed", zap.Any("checks", status.Checks))
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	c.JSON(http.StatusOK, status)
}
