package middleware

import (
	"net/http"
	"strings"

	"localpro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthMiddleware requires a valid bearer token and stores the caller's id
// and role in the context. Tokens are issued by the identity service.
func JWTAuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthenticated(c, "Missing or invalid Authorization header")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ParseIdentity(secret, tokenString)
		if err != nil {
			loggerFrom(c).Debug("Rejected token", zap.Error(err))
			abortUnauthenticated(c, "Invalid token")
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, role)
		c.Set(ContextLogger, loggerFrom(c).With(zap.String("userId", userID)))
		c.Next()
	}
}

// RequireRole lets through only callers whose token carries one of roles.
// It must run after JWTAuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if !allowed[role] {
			loggerFrom(c).Warn("Role not permitted", zap.String("role", role), zap.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{
				Code:    utils.KindAuthorization,
				Message: "Access denied",
			})
			return
		}
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
		Code:    utils.KindUnauthenticated,
		Message: message,
	})
}

func loggerFrom(c *gin.Context) *zap.Logger {
	if l, ok := c.Get(ContextLogger); ok {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}
