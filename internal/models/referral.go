package models

import (
	"time"

	"gorm.io/gorm"
)

// Referral 邀请记录
type Referral struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                                                              // 主键
	ReferrerID    string    `gorm:"type:varchar(36);not null;index" json:"referrer_id" validate:"notblank"`                             // 邀请人
	ReferredEmail string    `gorm:"type:varchar(255);not null" json:"referred_email" validate:"required,email"`                         // 被邀请邮箱
	ReferralCode  string    `gorm:"type:varchar(64);index" json:"referral_code"`                                                        // 邀请码
	Status        string    `gorm:"type:varchar(20);not null;index" json:"status" validate:"required,oneof=pending accepted completed"` // 状态
	BonusEarned   Money     `gorm:"not null;default:0" json:"bonus_earned"`                                                             // 奖励金额
	XPEarned      int       `gorm:"column:xp_earned;not null;default:0" json:"xp_earned"`                                               // 奖励 XP
	AcceptedAt    *DateTime `json:"accepted_at"`                                                                                        // 接受时间
	CompletedAt   *DateTime `json:"completed_at"`                                                                                       // 完成时间
	CreatedAt     time.Time `gorm:"index" json:"created_at"`                                                                            // 创建时间
	UpdatedAt     time.Time `json:"updated_at"`                                                                                         // 更新时间

	Referrer *User `gorm:"foreignKey:ReferrerID" json:"referrer,omitempty" validate:"-"` // 邀请人信息
}

// TableName 指定表名
func (Referral) TableName() string {
	return "referrals"
}

// BeforeCreate 生成主键
func (r *Referral) BeforeCreate(*gorm.DB) error {
	ensureID(&r.ID)
	return nil
}
