package leave

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

	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		if redisClient != nil {
			leaves.POST("", middleware.Idempotency(redisClient), middleware.RBACAuthorize(rbacService, "leave", "create"), handler.Apply)
			leaves.POST("/:id/approve", middleware.Idempotency(redisClient), middleware.RBACAuthorize(rbacService, "leave", "decide"), handler.Approve)
			leaves.POST("/:id/reject", middleware.Idempotency(redisClient), middleware.RBACAuthorize(rbacService, "leave", "decide"), handler.Reject)
		} else {
			leaves.POST("", middleware.RBACAuthorize(rbacService, "leave", "create"), handler.Apply)
			leaves.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "leave", "decide"), handler.Approve)
			leaves.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "leave", "decide"), handler.Reject)
		}
		leaves.GET("/mine", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.Mine)
		leaves.GET("/balance", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.Balance)
		leaves.GET("/pending", middleware.RBACAuthorize(rbacService, "leave", "decide"), handler.Pending)
	}
}
