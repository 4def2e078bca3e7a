package models

import (
	"time"

	"gorm.io/gorm"
)

// UserActivity 用户行为日志（只追加）
type UserActivity struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                                                                                                  // 主键
	UserID       string    `gorm:"type:varchar(36);not null;index" json:"user_id" validate:"notblank"`                                                                     // 用户ID
	ActivityType string    `gorm:"type:varchar(40);not null;index" json:"activity_type" validate:"required,oneof=click conversion xp_earned streak_updated tier_upgraded"` // 行为类型
	ProductID    *string   `gorm:"type:varchar(36);index" json:"product_id"`                                                                                               // 商品ID
	CategoryID   *string   `gorm:"type:varchar(36);index" json:"category_id"`                                                                                              // 分类ID
	XPEarned     int       `gorm:"column:xp_earned;not null;default:0" json:"xp_earned"`                                                                                   // 获得 XP
	Earnings     Money     `gorm:"not null;default:0" json:"earnings"`                                                                                                     // 收益
	Metadata     JSON      `json:"metadata"`                                                                                                                               // 附加信息
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                                                                                                                // 创建时间
}

// TableName 指定表名
func (UserActivity) TableName() string {
	return "user_activities"
}

// BeforeCreate 生成主键
func (a *UserActivity) BeforeCreate(*gorm.DB) error {
	ensureID(&a.ID)
	return nil
}

// UserClick 用户商品点击汇总
type UserClick struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                                          // 主键
	UserID        string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_click_user_product" json:"user_id"`    // 用户ID
	ProductID     string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_click_user_product" json:"product_id"` // 商品ID
	ClickCount    int64     `gorm:"not null;default:0" json:"click_count"`                                          // 点击次数
	LastClickedAt DateTime  `json:"last_clicked_at"`                                                                // 最近点击
	CreatedAt     time.Time `json:"created_at"`                                                                     // 创建时间
	UpdatedAt     time.Time `json:"updated_at"`                                                                     // 更新时间
}

// TableName 指定表名
func (UserClick) TableName() string {
	return "user_clicks"
}

// BeforeCreate 生成主键
func (c *UserClick) BeforeCreate(*gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

// UserConversion 用户转化记录（只追加）
type UserConversion struct {
	ID               string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                                 // 主键
	UserID           string    `gorm:"type:varchar(36);not null;index" json:"user_id" validate:"notblank"`    // 用户ID
	ProductID        string    `gorm:"type:varchar(36);not null;index" json:"product_id" validate:"notblank"` // 商品ID
	ConversionValue  Money     `gorm:"not null;default:0" json:"conversion_value" validate:"gte=0"`           // 订单金额
	CommissionEarned Money     `gorm:"not null;default:0" json:"commission_earned"`                           // 佣金
	XPEarned         int       `gorm:"column:xp_earned;not null;default:0" json:"xp_earned"`                  // 获得 XP
	ConversionDate   DateTime  `gorm:"index" json:"conversion_date"`                                          // 转化时间
	CreatedAt        time.Time `json:"created_at"`                                                            // 创建时间
}

// TableName 指定表名
func (UserConversion) TableName() string {
	return "user_conversions"
}

// BeforeCreate 生成主键
func (c *UserConversion) BeforeCreate(*gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
