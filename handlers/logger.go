package handlers

import (
	"localpro/middleware"
	"localpro/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped Zap logger from the Gin context,
// falling back to the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(middleware.ContextLogger); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}

// identity returns the caller set by the auth middleware.
func identity(c *gin.Context) models.Identity {
	return models.Identity{
		UserID: c.GetString(middleware.ContextUserID),
		Role:   c.GetString(middleware.ContextRole),
	}
}
