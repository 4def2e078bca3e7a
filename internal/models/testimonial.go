package models

import (
	"time"

	"gorm.io/gorm"
)

// Testimonial 用户评价
type Testimonial struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" json:"id"`               // 主键
	UserID        *string   `gorm:"type:varchar(36);index" json:"user_id"`               // 关联用户（可空）
	Name          string    `gorm:"type:varchar(160)" json:"name"`                       // 展示名称
	Tier          string    `gorm:"type:varchar(20)" json:"tier"`                        // 展示等级
	Quote         string    `gorm:"type:text;not null" json:"quote" validate:"notblank"` // 评价内容
	AvatarURL     string    `gorm:"type:varchar(1000)" json:"avatar_url"`                // 头像
	EarningsLabel string    `gorm:"type:varchar(60)" json:"earnings_label"`              // 收益标签
	IsActive      bool      `gorm:"index" json:"is_active"`                              // 是否展示
	CreatedAt     time.Time `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt     time.Time `json:"updated_at"`                                          // 更新时间
}

// TableName 指定表名
func (Testimonial) TableName() string {
	return "testimonials"
}

// BeforeCreate 生成主键
func (t *Testimonial) BeforeCreate(*gorm.DB) error {
	ensureID(&t.ID)
	return nil
}
