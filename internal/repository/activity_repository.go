package repository

import (
	"errors"
	"time"

	"github.com/admin-nexus/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActivityRepository 用户行为数据访问接口
type ActivityRepository interface {
	ResourceRepository[models.UserActivity]
	UpsertClick(userID, productID string, at time.Time) (*models.UserClick, error)
	GetClick(userID, productID string) (*models.UserClick, error)
}

// GormActivityRepository GORM 实现
type GormActivityRepository struct {
	*GormResourceRepository[models.UserActivity]
}

// NewActivityRepository 创建行为仓库
func NewActivityRepository(db *gorm.DB) *GormActivityRepository {
	return &GormActivityRepository{
		GormResourceRepository: NewResourceRepository[models.UserActivity](db, ResourceOptions{
			SearchColumns: []string{"activity_type"},
		}),
	}
}

// UpsertClick 记录一次点击：首次插入，之后在库内原子 +1
func (r *GormActivityRepository) UpsertClick(userID, productID string, at time.Time) (*models.UserClick, error) {
	click := &models.UserClick{
		UserID:        userID,
		ProductID:     productID,
		ClickCount:    1,
		LastClickedAt: models.NewDateTime(at),
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"click_count":     gorm.Expr("user_clicks.click_count + 1"),
			"last_clicked_at": at.UTC(),
			"updated_at":      at,
		}),
	}).Create(click).Error
	if err != nil {
		return nil, err
	}
	return r.GetClick(userID, productID)
}

// GetClick 获取点击汇总
func (r *GormActivityRepository) GetClick(userID, productID string) (*models.UserClick, error) {
	var click models.UserClick
	if err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&click).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &click, nil
}
