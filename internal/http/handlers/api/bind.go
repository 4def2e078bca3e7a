package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/admin-nexus/internal/service"

	"github.com/gin-gonic/gin"
)

// 服务端维护的字段，请求体中出现时忽略
var readonlyFields = []string{"id", "created_at", "updated_at"}

// bindPatch 解析 JSON 对象请求体
func bindPatch(c *gin.Context) (service.Patch, bool) {
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil || body == nil {
		respondError(c, http.StatusBadRequest, "Request body must be a JSON object", nil)
		return nil, false
	}
	for _, field := range readonlyFields {
		delete(body, field)
	}
	return service.Patch(body), true
}

// bindEntity 在默认值之上合并创建请求体
func bindEntity[T any](c *gin.Context, entity *T) bool {
	patch, ok := bindPatch(c)
	if !ok {
		return false
	}
	if err := patch.ApplyTo(entity); err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), nil)
		return false
	}
	return true
}

// bindRequest 解析带 binding 约束的请求结构
func bindRequest(c *gin.Context, req interface{}, msg string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, http.StatusBadRequest, msg, nil)
		return false
	}
	return true
}

// requireParam 读取必填路径参数
func requireParam(c *gin.Context, name string) (string, bool) {
	value := strings.TrimSpace(c.Param(name))
	if value == "" {
		respondError(c, http.StatusBadRequest, name+" is required", nil)
		return "", false
	}
	return value, true
}

// StatusRequest 状态更新请求
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}
