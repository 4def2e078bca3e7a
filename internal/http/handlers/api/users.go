package api

import (
	"net/http"
	"strings"

	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/http/handlers/shared"
	"github.com/admin-nexus/internal/http/response"
	"github.com/admin-nexus/internal/models"

	"github.com/gin-gonic/gin"
)

var resUser = resource{one: "user", many: "users"}

// AddXPRequest 增加 XP 请求
type AddXPRequest struct {
	XPAmount *int64 `json:"xpAmount" binding:"required"`
}

// ListUsers 用户列表
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.UserService.List()
	respondList(c, resUser, users, err)
}

// SearchUsers 按邮箱/用户名/姓名搜索
func (h *Handler) SearchUsers(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		respondError(c, http.StatusBadRequest, "Search query is required", nil)
		return
	}
	users, err := h.UserService.Search(q)
	respondList(c, resUser, users, err)
}

// GetUser 用户详情；调用者本人首次访问时自动建档
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}
	user, err := h.UserService.GetOrProvision(id, shared.GetIdentity(c))
	respondItem(c, resUser, "fetch", user, err)
}

// CreateUser 创建用户
func (h *Handler) CreateUser(c *gin.Context) {
	createResource(c, h.UserService, resUser, models.User{Tier: constants.TierBronze})
}

// UpdateUser 部分更新用户
func (h *Handler) UpdateUser(c *gin.Context) {
	updateResource[models.User](c, h.UserService, resUser)
}

// DeleteUser 删除用户
func (h *Handler) DeleteUser(c *gin.Context) {
	deleteResource[models.User](c, h.UserService, resUser)
}

// AddUserXP 原子增加用户 XP
func (h *Handler) AddUserXP(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}
	var req AddXPRequest
	if !bindRequest(c, &req, "xpAmount is required") {
		return
	}
	user, err := h.ProcedureService.AddXP(id, *req.XPAmount)
	if err != nil {
		respondServiceError(c, resUser, "Failed to add XP", err)
		return
	}
	h.Metrics.XPAwarded(*req.XPAmount)
	requestLog(c).Infow("user_xp_added", "user_id", id, "xp_amount", *req.XPAmount, "total_xp", user.TotalXP)
	response.SuccessWithMsg(c, "XP added successfully", user)
}
