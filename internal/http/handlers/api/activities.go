package api

import (
	"strings"

	"github.com/admin-nexus/internal/http/response"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/service"

	"github.com/gin-gonic/gin"
)

var (
	resActivity     = resource{one: "activity", many: "activities"}
	resNotification = resource{one: "notification", many: "notifications"}
)

// LogActivityRequest 行为记录请求
type LogActivityRequest struct {
	UserID       string       `json:"userId" binding:"required"`
	ActivityType string       `json:"activityType" binding:"required"`
	XPEarned     int          `json:"xpEarned"`
	Earnings     models.Money `json:"earnings"`
	ProductID    string       `json:"productId"`
	CategoryID   string       `json:"categoryId"`
	Metadata     models.JSON  `json:"metadata"`
}

// ClickRequest 商品点击请求
type ClickRequest struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
}

// ConversionRequest 转化记录请求
type ConversionRequest struct {
	UserID           string       `json:"userId" binding:"required"`
	ProductID        string       `json:"productId" binding:"required"`
	ConversionValue  models.Money `json:"conversionValue"`
	CommissionEarned models.Money `json:"commissionEarned"`
	XPEarned         int          `json:"xpEarned"`
}

// NotificationRequest 创建通知请求
type NotificationRequest struct {
	UserID   string      `json:"userId" binding:"required"`
	Title    string      `json:"title" binding:"required"`
	Message  string      `json:"message" binding:"required"`
	Type     string      `json:"type" binding:"required"`
	Metadata models.JSON `json:"metadata"`
}

func optionalID(raw string) *string {
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		return &trimmed
	}
	return nil
}

// ListActivities 行为记录列表
func (h *Handler) ListActivities(c *gin.Context) {
	activities, err := h.ActivityService.List()
	respondList(c, resActivity, activities, err)
}

// ListUserActivities 用户行为记录
func (h *Handler) ListUserActivities(c *gin.Context) {
	userID, ok := requireParam(c, "userId")
	if !ok {
		return
	}
	activities, err := h.ActivityService.ListForUser(userID)
	respondList(c, resActivity, activities, err)
}

// LogActivity 追加行为记录
func (h *Handler) LogActivity(c *gin.Context) {
	var req LogActivityRequest
	if !bindRequest(c, &req, "userId and activityType are required") {
		return
	}
	activity, err := h.ActivityService.Log(&models.UserActivity{
		UserID:       strings.TrimSpace(req.UserID),
		ActivityType: req.ActivityType,
		ProductID:    optionalID(req.ProductID),
		CategoryID:   optionalID(req.CategoryID),
		XPEarned:     req.XPEarned,
		Earnings:     req.Earnings,
		Metadata:     req.Metadata,
	})
	if err != nil {
		respondServiceError(c, resActivity, "Failed to log activity", err)
		return
	}
	response.Created(c, activity)
}

// LogClick 记录商品点击
func (h *Handler) LogClick(c *gin.Context) {
	var req ClickRequest
	if !bindRequest(c, &req, "userId and productId are required") {
		return
	}
	click, err := h.ActivityService.LogClick(req.UserID, req.ProductID)
	if err != nil {
		respondServiceError(c, resActivity, "Failed to log click", err)
		return
	}
	response.Created(c, click)
}

// LogConversion 记录转化
func (h *Handler) LogConversion(c *gin.Context) {
	var req ConversionRequest
	if !bindRequest(c, &req, "userId and productId are required") {
		return
	}
	conversion, err := h.ActivityService.LogConversion(service.ConversionInput{
		UserID:           req.UserID,
		ProductID:        req.ProductID,
		ConversionValue:  req.ConversionValue,
		CommissionEarned: req.CommissionEarned,
		XPEarned:         req.XPEarned,
	})
	if err != nil {
		respondServiceError(c, resActivity, "Failed to log conversion", err)
		return
	}
	response.Created(c, conversion)
}

// ListNotifications 通知列表（含用户）
func (h *Handler) ListNotifications(c *gin.Context) {
	notifications, err := h.NotificationService.List()
	respondList(c, resNotification, notifications, err)
}

// ListUserNotifications 用户通知，unreadOnly=true 时只返回未读
func (h *Handler) ListUserNotifications(c *gin.Context) {
	userID, ok := requireParam(c, "userId")
	if !ok {
		return
	}
	unreadOnly := strings.EqualFold(strings.TrimSpace(c.Query("unreadOnly")), "true")
	notifications, err := h.NotificationService.ListForUser(userID, unreadOnly)
	respondList(c, resNotification, notifications, err)
}

// CreateNotification 创建通知
func (h *Handler) CreateNotification(c *gin.Context) {
	var req NotificationRequest
	if !bindRequest(c, &req, "userId, title, message and type are required") {
		return
	}
	notification, err := h.NotificationService.Notify(req.UserID, req.Title, req.Message, req.Type, req.Metadata)
	if err != nil {
		respondServiceError(c, resNotification, resNotification.failed("create", false), err)
		return
	}
	response.Created(c, notification)
}

// MarkNotificationRead 标记通知为已读
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.NotificationService.MarkRead(id); err != nil {
		respondServiceError(c, resNotification, resNotification.failed("update", false), err)
		return
	}
	response.Message(c, "Notification marked as read")
}

// DeleteNotification 删除通知
func (h *Handler) DeleteNotification(c *gin.Context) {
	deleteResource[models.Notification](c, h.NotificationService, resNotification)
}
