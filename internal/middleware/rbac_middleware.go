package middleware

import (
	"net/http"

	"leavedesk/internal/rbac"
	"leavedesk/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACAuthorize checks the caller's role (set by AuthMiddleware) against the
// static policy for the given resource and action.
func RBACAuthorize(service rbac.Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You do not have permission to access this resource",
				resource+":"+action,
			)
			c.Abort()
			return
		}
		c.Next()
	}
}
