package models

import (
	"time"

	"gorm.io/gorm"
)

// User 平台用户（创作者）
type User struct {
	ID               string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                                                             // 主键（与身份令牌 sub 一致）
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`                     // 邮箱
	Username         string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`                                            // 用户名
	FullName         string    `gorm:"type:varchar(255)" json:"full_name"`                                                                // 姓名
	AvatarURL        string    `gorm:"type:varchar(1000)" json:"avatar_url"`                                                              // 头像
	Tier             string    `gorm:"type:varchar(20);not null;index" json:"tier" validate:"required,oneof=bronze silver gold platinum"` // 等级
	TotalXP          int64     `gorm:"not null;default:0" json:"total_xp" validate:"gte=0"`                                               // 累计 XP
	TotalEarnings    Money     `gorm:"not null;default:0" json:"total_earnings" validate:"gte=0"`                                         // 累计收益
	CurrentStreak    int       `gorm:"not null;default:0" json:"current_streak" validate:"gte=0"`                                         // 当前连续天数
	LongestStreak    int       `gorm:"not null;default:0" json:"longest_streak"`                                                          // 最长连续天数
	LastActivityDate *DateTime `json:"last_activity_date"`                                                                                // 最后活跃时间
	CreatedAt        time.Time `gorm:"index" json:"created_at"`                                                                           // 创建时间
	UpdatedAt        time.Time `json:"updated_at"`                                                                                        // 更新时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// BeforeCreate 生成主键
func (u *User) BeforeCreate(*gorm.DB) error {
	ensureID(&u.ID)
	return nil
}
