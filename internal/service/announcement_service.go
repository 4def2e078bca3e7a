package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/admin-nexus/internal/cache"
	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/logger"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/repository"
)

var activeAnnouncementsKey = cache.ListKey("announcements", "active")

// AnnouncementService 公告业务服务
type AnnouncementService struct {
	*ResourceService[models.Announcement]
	now func() time.Time
}

// NewAnnouncementService 创建公告服务
func NewAnnouncementService(repo repository.ResourceRepository[models.Announcement]) *AnnouncementService {
	return &AnnouncementService{
		ResourceService: NewResourceService(repo, ResourceSpec[models.Announcement]{
			Name:      "announcements",
			Patchable: []string{"title", "content", "type", "priority", "start_date", "end_date", "is_active"},
			Normalize: normalizeAnnouncement,
			Validate:  validateAnnouncement,
			CacheKeys: []string{activeAnnouncementsKey},
		}),
		now: time.Now,
	}
}

func normalizeAnnouncement(a *models.Announcement) {
	a.Title = strings.TrimSpace(a.Title)
	a.Type = strings.ToLower(strings.TrimSpace(a.Type))
	if a.Type == "" {
		a.Type = constants.AnnouncementTypeInfo
	}
	if a.Priority == 0 {
		a.Priority = constants.AnnouncementPriorityMin
	}
	if a.StartDate.IsZero() {
		a.StartDate = models.NewDateTime(time.Now())
	}
	if a.EndDate != nil && a.EndDate.IsZero() {
		a.EndDate = nil
	}
}

// validateAnnouncement 跨字段校验：结束时间不早于开始时间
func validateAnnouncement(a *models.Announcement) error {
	if a.EndDate != nil && a.EndDate.Before(a.StartDate.Time) {
		return invalidf("end_date must not be before start_date")
	}
	return nil
}

// ListActive 当前处于展示窗口的公告：优先级降序，同级最新在前
func (s *AnnouncementService) ListActive(ctx context.Context) ([]models.Announcement, error) {
	items, hit, err := cache.GetList[models.Announcement](ctx, activeAnnouncementsKey)
	if err != nil || !hit {
		items, err = s.ListBy(map[string]interface{}{"is_active": true})
		if err != nil {
			return nil, err
		}
		if err := cache.SetList(ctx, activeAnnouncementsKey, items); err != nil {
			logger.Warnw("cache_set_failed", "key", activeAnnouncementsKey, "error", err)
		}
	}
	now := s.now()
	live := make([]models.Announcement, 0, len(items))
	for _, item := range items {
		if item.LiveAt(now) {
			live = append(live, item)
		}
	}
	sort.SliceStable(live, func(i, j int) bool {
		if live[i].Priority != live[j].Priority {
			return live[i].Priority > live[j].Priority
		}
		return live[i].CreatedAt.After(live[j].CreatedAt)
	})
	return live, nil
}

// DeactivateExpired 关闭已过期但仍启用的公告，返回处理数量
func (s *AnnouncementService) DeactivateExpired() (int, error) {
	items, err := s.ListBy(map[string]interface{}{"is_active": true})
	if err != nil {
		return 0, err
	}
	now := s.now()
	count := 0
	for i := range items {
		item := items[i]
		if item.EndDate == nil || item.EndDate.IsZero() || !item.EndDate.Before(now) {
			continue
		}
		item.IsActive = false
		if _, err := s.Save(item.ID, &item, []string{"is_active"}); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
