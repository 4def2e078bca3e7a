package api

import (
	"errors"
	"net/http"
	"strings"

	handlershared "github.com/admin-nexus/internal/http/handlers/shared"
	"github.com/admin-nexus/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, status int, msg string, err error) {
	handlershared.RespondError(c, status, msg, err)
}

// resource 资源名称，用于拼接错误与提示消息
type resource struct {
	one  string
	many string
}

func (r resource) notFound() string {
	return capitalize(r.one) + " not found"
}

func (r resource) failed(action string, plural bool) string {
	if plural {
		return "Failed to " + action + " " + r.many
	}
	return "Failed to " + action + " " + r.one
}

func (r resource) done(action string) string {
	return capitalize(r.one) + " " + action + " successfully"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var clientErrors = []error{
	service.ErrInvalidInput,
	service.ErrConflict,
	service.ErrCategoryInUse,
	service.ErrCategoryMissing,
	service.ErrInvalidStatus,
	service.ErrInvalidStatusTransition,
	service.ErrInvalidXPAmount,
}

func isClientError(err error) bool {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondServiceError 把业务错误映射为状态码：不存在 404，校验类 400，其余 500（原因只写日志）
func respondServiceError(c *gin.Context, res resource, failMsg string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, res.notFound(), nil)
	case isClientError(err):
		respondError(c, http.StatusBadRequest, err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, failMsg, err)
	}
}
