package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProcedureRepository 服务端过程能力（XP 原子累加、奖励评估）
type ProcedureRepository interface {
	// IncrementXP 在库内原子累加 XP，用户不存在时返回 nil
	IncrementXP(userID string, amount int64) (*models.User, error)
	// EvaluateRewards 解锁满足条件的奖励并返回本次新解锁的奖励
	EvaluateRewards(userID string) ([]models.Reward, error)
}

// NewProcedureRepository 按后端类型创建过程仓库
func NewProcedureRepository(db *gorm.DB, backend string) ProcedureRepository {
	if strings.EqualFold(strings.TrimSpace(backend), constants.ProceduresNative) {
		return &NativeProcedureRepository{db: db}
	}
	return &LocalProcedureRepository{db: db}
}

func findUser(db *gorm.DB, userID string) (*models.User, error) {
	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// LocalProcedureRepository 以普通 SQL 实现的过程
type LocalProcedureRepository struct {
	db *gorm.DB
}

// IncrementXP 单条 UPDATE 累加，不做读后写
func (r *LocalProcedureRepository) IncrementXP(userID string, amount int64) (*models.User, error) {
	result := r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"total_xp":   gorm.Expr("total_xp + ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return findUser(r.db, userID)
}

// EvaluateRewards 规则：启用中、xp_required <= total_xp、earnings_required 为空或 <= total_earnings 且未解锁
func (r *LocalProcedureRepository) EvaluateRewards(userID string) ([]models.Reward, error) {
	unlocked := make([]models.Reward, 0)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		user, err := findUser(tx, userID)
		if err != nil || user == nil {
			return err
		}
		var candidates []models.Reward
		if err := tx.Where("is_active = ? AND xp_required <= ?", true, user.TotalXP).
			Where("id NOT IN (?)", tx.Model(&models.UserReward{}).Select("reward_id").Where("user_id = ?", userID)).
			Order("xp_required ASC").
			Find(&candidates).Error; err != nil {
			return err
		}
		now := models.NewDateTime(time.Now())
		for _, reward := range candidates {
			if reward.EarningsRequired != nil && reward.EarningsRequired.GreaterThan(user.TotalEarnings.Decimal) {
				continue
			}
			row := &models.UserReward{UserID: userID, RewardID: reward.ID, UnlockedAt: now}
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected > 0 {
				unlocked = append(unlocked, reward)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return unlocked, nil
}

// NativeProcedureRepository 调用数据库内置函数 add_user_xp / check_user_rewards
type NativeProcedureRepository struct {
	db *gorm.DB
}

// IncrementXP 调用 add_user_xp(user_id, xp_amount)
func (r *NativeProcedureRepository) IncrementXP(userID string, amount int64) (*models.User, error) {
	if err := r.db.Exec("SELECT add_user_xp(?, ?)", userID, amount).Error; err != nil {
		return nil, err
	}
	return findUser(r.db, userID)
}

// EvaluateRewards 调用 check_user_rewards(user_id)
func (r *NativeProcedureRepository) EvaluateRewards(userID string) ([]models.Reward, error) {
	rewards := make([]models.Reward, 0)
	if err := r.db.Raw("SELECT * FROM check_user_rewards(?)", userID).Scan(&rewards).Error; err != nil {
		return nil, err
	}
	return rewards, nil
}
