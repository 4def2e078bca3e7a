package repository

import (
	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/models"

	"gorm.io/gorm"
)

// StatsRepository 后台统计聚合查询接口
// 说明：仅聚合统计数据，不承载业务规则。
type StatsRepository interface {
	GetGeneral() (GeneralStatsRow, error)
	CountUsersByTier() ([]TierCountRow, error)
}

// GeneralStatsRow 总览统计
type GeneralStatsRow struct {
	TotalUsers           int64        `json:"total_users"`
	ActiveProducts       int64        `json:"active_products"`
	TotalCategories      int64        `json:"total_categories"`
	TotalCourses         int64        `json:"total_courses"`
	TotalXP              int64        `json:"total_xp"`
	TotalEarnings        models.Money `json:"total_earnings"`
	CompletedTransaction models.Money `json:"completed_transaction_volume"`
	WaitlistSize         int64        `json:"waitlist_size"`
}

// TierCountRow 等级人数
type TierCountRow struct {
	Tier  string `json:"tier"`
	Count int64  `json:"count"`
}

// GormStatsRepository GORM 实现
type GormStatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository 创建统计仓库
func NewStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

// GetGeneral 获取总览统计
func (r *GormStatsRepository) GetGeneral() (GeneralStatsRow, error) {
	result := GeneralStatsRow{}

	if err := r.db.Model(&models.User{}).Count(&result.TotalUsers).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Product{}).Where("is_active = ?", true).Count(&result.ActiveProducts).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Category{}).Count(&result.TotalCategories).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Course{}).Count(&result.TotalCourses).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.WaitlistEntry{}).Count(&result.WaitlistSize).Error; err != nil {
		return result, err
	}

	var userSums struct {
		TotalXP       int64
		TotalEarnings models.Money
	}
	if err := r.db.Model(&models.User{}).
		Select("COALESCE(SUM(total_xp), 0) AS total_xp, COALESCE(SUM(total_earnings), 0) AS total_earnings").
		Scan(&userSums).Error; err != nil {
		return result, err
	}
	result.TotalXP = userSums.TotalXP
	result.TotalEarnings = userSums.TotalEarnings

	var volume struct {
		Amount models.Money
	}
	if err := r.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS amount").
		Where("status = ?", constants.TransactionStatusCompleted).
		Scan(&volume).Error; err != nil {
		return result, err
	}
	result.CompletedTransaction = volume.Amount
	return result, nil
}

// CountUsersByTier 按等级统计人数，未出现的等级补 0
func (r *GormStatsRepository) CountUsersByTier() ([]TierCountRow, error) {
	var rows []TierCountRow
	if err := r.db.Model(&models.User{}).
		Select("tier, COUNT(*) AS count").
		Group("tier").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Tier] = row.Count
	}
	result := make([]TierCountRow, 0, len(constants.Tiers))
	for _, tier := range constants.Tiers {
		result = append(result, TierCountRow{Tier: tier, Count: counts[tier]})
	}
	return result, nil
}
