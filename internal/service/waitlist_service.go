package service

import (
	"strings"

	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/repository"
)

// WaitlistService 候补名单服务
type WaitlistService struct {
	*ResourceService[models.WaitlistEntry]
}

// NewWaitlistService 创建候补名单服务
func NewWaitlistService(repo repository.ResourceRepository[models.WaitlistEntry]) *WaitlistService {
	return &WaitlistService{
		ResourceService: NewResourceService(repo, ResourceSpec[models.WaitlistEntry]{
			Name:      "waitlist",
			Patchable: []string{"email", "status", "source", "metadata"},
			Unique: func(w *models.WaitlistEntry) map[string]interface{} {
				return map[string]interface{}{"email": w.Email}
			},
			Normalize: func(w *models.WaitlistEntry) {
				w.Email = strings.ToLower(strings.TrimSpace(w.Email))
				w.Source = strings.TrimSpace(w.Source)
				w.Status = strings.ToLower(strings.TrimSpace(w.Status))
				if w.Status == "" {
					w.Status = constants.WaitlistStatusPending
				}
			},
		}),
	}
}

// WaitlistFilter 导出过滤条件
type WaitlistFilter struct {
	Status string
	Source string
	Search string
}

// Filter 按状态、来源与关键词筛选
func (s *WaitlistService) Filter(filter WaitlistFilter) ([]models.WaitlistEntry, error) {
	filters := map[string]interface{}{}
	if status := strings.TrimSpace(filter.Status); status != "" {
		filters["status"] = strings.ToLower(status)
	}
	if source := strings.TrimSpace(filter.Source); source != "" {
		filters["source"] = source
	}
	return s.Query(repository.ListQuery{Filters: filters, Search: strings.TrimSpace(filter.Search)})
}

// UpdateStatus 更新候补状态
func (s *WaitlistService) UpdateStatus(id, status string) (*models.WaitlistEntry, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if validateOneOf(status, constants.WaitlistStatuses) != nil {
		return nil, ErrInvalidStatus
	}
	entry, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	entry.Status = status
	return s.Save(id, entry, []string{"status"})
}
