package service

import (
	"strings"

	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/repository"
)

// NotificationService 用户通知服务
type NotificationService struct {
	*ResourceService[models.Notification]
}

// NewNotificationService 创建通知服务
func NewNotificationService(repo repository.ResourceRepository[models.Notification]) *NotificationService {
	return &NotificationService{
		ResourceService: NewResourceService(repo, ResourceSpec[models.Notification]{
			Name:      "notifications",
			Patchable: []string{"title", "message", "type", "is_read", "metadata"},
			Normalize: func(n *models.Notification) {
				n.Title = strings.TrimSpace(n.Title)
				n.Type = strings.ToLower(strings.TrimSpace(n.Type))
				if n.Type == "" {
					n.Type = constants.NotificationTypeGeneral
				}
			},
		}),
	}
}

// List 全部通知（含用户名称信息）
func (s *NotificationService) List() ([]models.Notification, error) {
	return s.Query(repository.ListQuery{Preload: []string{"User"}})
}

// ListForUser 用户通知，unreadOnly 为 true 时只返回未读
func (s *NotificationService) ListForUser(userID string, unreadOnly bool) ([]models.Notification, error) {
	filters := map[string]interface{}{"user_id": userID}
	if unreadOnly {
		filters["is_read"] = false
	}
	return s.ListBy(filters)
}

// Notify 创建一条通知
func (s *NotificationService) Notify(userID, title, message, notificationType string, metadata models.JSON) (*models.Notification, error) {
	return s.Create(&models.Notification{
		UserID:   userID,
		Title:    title,
		Message:  message,
		Type:     notificationType,
		Metadata: metadata,
	})
}

// MarkRead 标记为已读
func (s *NotificationService) MarkRead(id string) (*models.Notification, error) {
	notification, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if notification.IsRead {
		return notification, nil
	}
	notification.IsRead = true
	return s.Save(id, notification, []string{"is_read"})
}
