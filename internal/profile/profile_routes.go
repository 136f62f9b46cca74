package profile

import (
	"leavedesk/internal/middleware"
	"leavedesk/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	profiles := r.Group("/profile")
	profiles.Use(middleware.AuthMiddleware())
	{
		profiles.GET("/:employeeId", middleware.RBACAuthorize(rbacService, "profile", "read"), handler.Get)
		profiles.PUT("/:employeeId", middleware.RBACAuthorize(rbacService, "profile", "update"), handler.Update)
	}
}
