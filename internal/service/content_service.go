package service

import (
	"strings"

	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/repository"
)

// ProductCategoryService 商品与分类关联服务
type ProductCategoryService struct {
	*ResourceService[models.ProductCategory]
}

// NewProductCategoryService 创建关联服务
func NewProductCategoryService(repo repository.ResourceRepository[models.ProductCategory]) *ProductCategoryService {
	return &ProductCategoryService{
		ResourceService: NewResourceService(repo, ResourceSpec[models.ProductCategory]{
			Name: "product_categories",
		}),
	}
}

// List 关联列表（含商品与分类名称）
func (s *ProductCategoryService) List() ([]models.ProductCategory, error) {
	return s.Query(repository.ListQuery{Preload: []string{"Product", "Category"}})
}

// ProductReviewService 商品评价服务
type ProductReviewService struct {
	*ResourceService[models.ProductReview]
}

// NewProductReviewService 创建商品评价服务
func NewProductReviewService(repo repository.ResourceRepository[models.ProductReview]) *ProductReviewService {
	return &ProductReviewService{
		ResourceService: NewResourceService(repo, ResourceSpec[models.ProductReview]{
			Name:      "product_reviews",
			Patchable: []string{"rating", "comment", "is_approved"},
		}),
	}
}

// ListByProduct 商品下的评价
func (s *ProductReviewService) ListByProduct(productID string) ([]models.ProductReview, error) {
	return s.ListBy(map[string]interface{}{"product_id": productID})
}

// NewTimelineStepService 创建流程步骤服务
func NewTimelineStepService(repo repository.ResourceRepository[models.TimelineStep]) *ResourceService[models.TimelineStep] {
	return NewResourceService(repo, ResourceSpec[models.TimelineStep]{
		Name:      "timeline_steps",
		Patchable: []string{"title", "description", "icon", "sort_order", "is_active"},
		Normalize: func(s *models.TimelineStep) { s.Title = strings.TrimSpace(s.Title) },
	})
}

// NewTrustBadgeService 创建信任徽章服务
func NewTrustBadgeService(repo repository.ResourceRepository[models.TrustBadge]) *ResourceService[models.TrustBadge] {
	return NewResourceService(repo, ResourceSpec[models.TrustBadge]{
		Name:      "trust_badges",
		Patchable: []string{"title", "description", "icon", "sort_order", "is_active"},
		Normalize: func(b *models.TrustBadge) { b.Title = strings.TrimSpace(b.Title) },
	})
}

// NewNavigationItemService 创建导航菜单服务
func NewNavigationItemService(repo repository.ResourceRepository[models.NavigationItem]) *ResourceService[models.NavigationItem] {
	return NewResourceService(repo, ResourceSpec[models.NavigationItem]{
		Name:      "navigation_items",
		Patchable: []string{"label", "href", "icon", "parent_id", "sort_order", "is_active"},
		Normalize: func(n *models.NavigationItem) {
			n.Label = strings.TrimSpace(n.Label)
			n.Href = strings.TrimSpace(n.Href)
		},
	})
}
