package repository

import (
	"errors"

	"github.com/admin-nexus/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository 分类数据访问接口
type CategoryRepository interface {
	ResourceRepository[models.Category]
	GetBySlug(slug string, activeOnly bool) (*models.Category, error)
	CountProducts(categoryID string) (int64, error)
}

// GormCategoryRepository GORM 实现
type GormCategoryRepository struct {
	*GormResourceRepository[models.Category]
}

// NewCategoryRepository 创建分类仓库
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{
		GormResourceRepository: NewResourceRepository[models.Category](db, ResourceOptions{
			DefaultOrder:  "sort_order ASC, created_at DESC",
			SearchColumns: []string{"name", "slug", "description"},
		}),
	}
}

// GetBySlug 根据 slug 获取分类
func (r *GormCategoryRepository) GetBySlug(slug string, activeOnly bool) (*models.Category, error) {
	var category models.Category
	query := r.db.Where("slug = ?", slug)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// CountProducts 统计分类下的商品数量
func (r *GormCategoryRepository) CountProducts(categoryID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
