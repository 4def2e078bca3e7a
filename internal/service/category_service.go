package service

import (
	"context"
	"strings"

	"github.com/admin-nexus/internal/cache"
	"github.com/admin-nexus/internal/logger"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/repository"

	"github.com/gosimple/slug"
)

var activeCategoriesKey = cache.ListKey("categories", "active")

// CategoryService 分类业务服务
type CategoryService struct {
	*ResourceService[models.Category]
	repo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{
		ResourceService: NewResourceService[models.Category](repo, ResourceSpec[models.Category]{
			Name: "categories",
			Patchable: []string{
				"name", "slug", "icon", "description", "avg_commission", "conversion_rate",
				"active_creators", "avg_xp", "badge_text", "badge_color", "is_active", "sort_order",
			},
			Unique: func(c *models.Category) map[string]interface{} {
				return map[string]interface{}{"slug": c.Slug}
			},
			Normalize: normalizeCategory,
			CacheKeys: []string{activeCategoriesKey},
		}),
		repo: repo,
	}
}

func normalizeCategory(c *models.Category) {
	c.Name = strings.TrimSpace(c.Name)
	c.Slug = strings.TrimSpace(c.Slug)
	if c.Slug == "" && c.Name != "" {
		c.Slug = slug.Make(c.Name)
	}
}

// ListActive 启用中的分类（按 sort_order），优先读缓存
func (s *CategoryService) ListActive(ctx context.Context) ([]models.Category, error) {
	if items, hit, err := cache.GetList[models.Category](ctx, activeCategoriesKey); err == nil && hit {
		return items, nil
	}
	items, err := s.ListBy(map[string]interface{}{"is_active": true})
	if err != nil {
		return nil, err
	}
	if err := cache.SetList(ctx, activeCategoriesKey, items); err != nil {
		logger.Warnw("cache_set_failed", "key", activeCategoriesKey, "error", err)
	}
	return items, nil
}

// GetBySlug 根据 slug 获取启用中的分类
func (s *CategoryService) GetBySlug(value string) (*models.Category, error) {
	category, err := s.repo.GetBySlug(strings.TrimSpace(value), true)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Exists 判断分类是否存在
func (s *CategoryService) Exists(id string) (bool, error) {
	count, err := s.repo.Count(map[string]interface{}{"id": id}, "")
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete 删除分类，仍有商品引用时拒绝
func (s *CategoryService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	count, err := s.repo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.ResourceService.Delete(id)
}
