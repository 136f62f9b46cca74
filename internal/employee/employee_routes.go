package employee

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
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("", middleware.RBACAuthorize(rbacService, "user", "read"), handler.List)
		users.GET("/managers", middleware.RBACAuthorize(rbacService, "user", "read"), handler.Managers)
		users.GET("/by-email", middleware.RBACAuthorize(rbacService, "user", "read"), handler.ByEmail)
		users.GET("/manager/:id/employees", middleware.RBACAuthorize(rbacService, "user", "read"), handler.Reports)
	}
}
