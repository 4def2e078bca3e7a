package api

import "github.com/admin-nexus/internal/provider"

// Handler 管理后台 REST 接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建接口处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
