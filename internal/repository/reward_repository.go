package repository

import (
	"github.com/admin-nexus/internal/models"

	"gorm.io/gorm"
)

// RewardRepository 奖励数据访问接口
type RewardRepository interface {
	ResourceRepository[models.Reward]
	ListForUser(userID string) ([]models.UserReward, error)
	ListUnlockedIDs(userID string) ([]string, error)
}

// GormRewardRepository GORM 实现
type GormRewardRepository struct {
	*GormResourceRepository[models.Reward]
}

// NewRewardRepository 创建奖励仓库
func NewRewardRepository(db *gorm.DB) *GormRewardRepository {
	return &GormRewardRepository{
		GormResourceRepository: NewResourceRepository[models.Reward](db, ResourceOptions{
			DefaultOrder:  "xp_required ASC",
			SearchColumns: []string{"name", "description"},
		}),
	}
}

// ListForUser 用户已解锁的奖励（含奖励详情），最近解锁在前
func (r *GormRewardRepository) ListForUser(userID string) ([]models.UserReward, error) {
	rows := make([]models.UserReward, 0)
	if err := r.db.Preload("Reward").
		Where("user_id = ?", userID).
		Order("unlocked_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListUnlockedIDs 用户已解锁的奖励 ID
func (r *GormRewardRepository) ListUnlockedIDs(userID string) ([]string, error) {
	ids := make([]string, 0)
	if err := r.db.Model(&models.UserReward{}).Where("user_id = ?", userID).Pluck("reward_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
