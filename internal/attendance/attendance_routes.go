package attendance

import (
	"leavedesk/internal/middleware"
	"leavedesk/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	att := r.Group("/attendance")
	att.Use(middleware.AuthMiddleware())
	{
		if redisClient != nil {
			att.POST("/swipe", middleware.Idempotency(redisClient), middleware.RBACAuthorize(rbacService, "attendance", "create"), handler.Swipe)
		} else {
			att.POST("/swipe", middleware.RBACAuthorize(rbacService, "attendance", "create"), handler.Swipe)
		}
		att.GET("/total-hours", middleware.RBACAuthorize(rbacService, "attendance", "read"), handler.TotalHours)
	}
}
