package service

import (
	"context"
	"strings"

	"github.com/admin-nexus/internal/cache"
	"github.com/admin-nexus/internal/logger"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/repository"
)

var activeProductsKey = cache.ListKey("products", "active")

// ProductService 商品业务服务
type ProductService struct {
	*ResourceService[models.Product]
	categories *CategoryService
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ResourceRepository[models.Product], categories *CategoryService) *ProductService {
	s := &ProductService{categories: categories}
	s.ResourceService = NewResourceService(repo, ResourceSpec[models.Product]{
		Name: "products",
		Patchable: []string{
			"category_id", "name", "description", "commission_rate", "conversion_rate", "xp_reward",
			"average_order_value", "affiliate_url", "product_url", "image_url", "is_active",
		},
		Normalize: func(p *models.Product) {
			p.Name = strings.TrimSpace(p.Name)
			p.CategoryID = strings.TrimSpace(p.CategoryID)
		},
		Validate:  s.validate,
		CacheKeys: []string{activeProductsKey},
	})
	return s
}

// validate 分类必须存在
func (s *ProductService) validate(p *models.Product) error {
	if s.categories == nil {
		return nil
	}
	exists, err := s.categories.Exists(p.CategoryID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCategoryMissing
	}
	return nil
}

// List 全部商品（含分类）
func (s *ProductService) List() ([]models.Product, error) {
	return s.Query(repository.ListQuery{Preload: []string{"Category"}})
}

// ListActive 上架商品（最新在前），优先读缓存
func (s *ProductService) ListActive(ctx context.Context) ([]models.Product, error) {
	if items, hit, err := cache.GetList[models.Product](ctx, activeProductsKey); err == nil && hit {
		return items, nil
	}
	items, err := s.Query(repository.ListQuery{
		Filters: map[string]interface{}{"is_active": true},
		Preload: []string{"Category"},
	})
	if err != nil {
		return nil, err
	}
	if err := cache.SetList(ctx, activeProductsKey, items); err != nil {
		logger.Warnw("cache_set_failed", "key", activeProductsKey, "error", err)
	}
	return items, nil
}

// ListByCategory 分类下的上架商品
func (s *ProductService) ListByCategory(categoryID string) ([]models.Product, error) {
	return s.Query(repository.ListQuery{
		Filters: map[string]interface{}{"category_id": categoryID, "is_active": true},
		Preload: []string{"Category"},
	})
}
