package models

import (
	"time"

	"gorm.io/gorm"
)

// Reward 成就奖励
type Reward struct {
	ID               string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                                                             // 主键
	Name             string    `gorm:"type:varchar(160);not null" json:"name" validate:"notblank"`                                        // 名称
	Description      string    `gorm:"type:text" json:"description"`                                                                      // 描述
	Tier             string    `gorm:"type:varchar(20);not null;index" json:"tier" validate:"required,oneof=bronze silver gold platinum"` // 适用等级
	XPRequired       int64     `gorm:"column:xp_required;not null;default:0" json:"xp_required" validate:"gte=0"`                         // 所需 XP
	EarningsRequired *Money    `json:"earnings_required" validate:"omitempty,gte=0"`                                                      // 所需收益（可空）
	BadgeIcon        string    `gorm:"type:varchar(120)" json:"badge_icon"`                                                               // 徽章图标
	BadgeColor       string    `gorm:"type:varchar(30)" json:"badge_color"`                                                               // 徽章颜色
	IsActive         bool      `gorm:"index" json:"is_active"`                                                                            // 是否启用
	CreatedAt        time.Time `gorm:"index" json:"created_at"`                                                                           // 创建时间
	UpdatedAt        time.Time `json:"updated_at"`                                                                                        // 更新时间
}

// TableName 指定表名
func (Reward) TableName() string {
	return "rewards"
}

// BeforeCreate 生成主键
func (r *Reward) BeforeCreate(*gorm.DB) error {
	ensureID(&r.ID)
	return nil
}

// UserReward 用户已解锁奖励
type UserReward struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                                  // 主键
	UserID     string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_reward" json:"user_id"`   // 用户ID
	RewardID   string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_reward" json:"reward_id"` // 奖励ID
	UnlockedAt DateTime  `gorm:"not null" json:"unlocked_at"`                                            // 解锁时间
	CreatedAt  time.Time `json:"created_at"`                                                             // 创建时间

	Reward *Reward `gorm:"foreignKey:RewardID" json:"rewards,omitempty" validate:"-"` // 奖励详情
}

// TableName 指定表名
func (UserReward) TableName() string {
	return "user_rewards"
}

// BeforeCreate 生成主键
func (r *UserReward) BeforeCreate(*gorm.DB) error {
	ensureID(&r.ID)
	return nil
}
