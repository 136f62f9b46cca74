package leave

import (
	"encoding/json"
	"net/http"
	"time"

	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

// releaseIdempotencyLock frees the in-flight lock set by the idempotency
// middleware so a retry after completion replays instead of getting 409.
func (h *Handler) releaseIdempotencyLock(c *gin.Context) {
	if h.rdb == nil {
		return
	}
	lockKey, _ := c.Get("idempotency_lock_key")
	if lk, ok := lockKey.(string); ok && lk != "" {
		h.rdb.Del(c.Request.Context(), lk)
	}
}

// cacheIdempotentResponse stores the success payload under the middleware's
// cache key so retries with the same Idempotency-Key replay it.
func (h *Handler) cacheIdempotentResponse(c *gin.Context, resp any) {
	if h.rdb == nil {
		return
	}
	cacheKey, _ := c.Get("idempotency_cache_key")
	if ck, ok := cacheKey.(string); ok && ck != "" {
		if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
			_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
		}
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Apply(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	employeeID := c.GetString("employee_id")
	h.logger.Debug("http apply leave", zap.String("employee_id", employeeID))

	var req ApplyLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http apply leave bind failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), employeeID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResponse(c, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Mine(c *gin.Context) {
	employeeID := c.GetString("employee_id")

	resp, err := h.service.History(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Balance(c *gin.Context) {
	employeeID := c.GetString("employee_id")

	resp, err := h.service.Balance(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Pending(c *gin.Context) {
	managerID := c.GetString("employee_id")

	resp, err := h.service.PendingForManager(c.Request.Context(), managerID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	id := c.Param("id")
	actorID := c.GetString("employee_id")

	resp, err := h.service.Approve(c.Request.Context(), actorID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResponse(c, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	id := c.Param("id")
	actorID := c.GetString("employee_id")

	var req RejectLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http reject leave bind failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	resp, err := h.service.Reject(c.Request.Context(), actorID, id, req.Feedback)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResponse(c, resp)
	response.Success(c, http.StatusOK, resp, nil)
}
