package shared

import (
	"github.com/admin-nexus/internal/http/response"
	"github.com/admin-nexus/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestIDKey gin 上下文中的请求 ID 键
const RequestIDKey = "request_id"

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get(RequestIDKey); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW(RequestIDKey, id)
		}
	}
	return logger.S()
}

// RespondError 返回错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, status int, msg string, err error) {
	appErr := response.WrapError(status, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"status", appErr.Status,
			"message", appErr.Message,
			"path", c.FullPath(),
			"error", err,
		)
	}
	response.Error(c, appErr.Status, appErr.Message)
}
