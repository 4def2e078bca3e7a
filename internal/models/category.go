package models

import (
	"time"

	"gorm.io/gorm"
)

// Category 商品分类
type Category struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                                  // 主键
	Name           string    `gorm:"type:varchar(120);not null" json:"name" validate:"notblank"`             // 名称
	Slug           string    `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug" validate:"notblank"` // 唯一标识
	Icon           string    `gorm:"type:varchar(500)" json:"icon"`                                          // 图标
	Description    string    `gorm:"type:text" json:"description"`                                           // 描述
	AvgCommission  float64   `gorm:"not null;default:0" json:"avg_commission"`                               // 平均佣金率
	ConversionRate float64   `gorm:"not null;default:0" json:"conversion_rate"`                              // 转化率
	ActiveCreators int       `gorm:"not null;default:0" json:"active_creators"`                              // 活跃创作者数
	AvgXP          int       `gorm:"not null;default:0" json:"avg_xp"`                                       // 平均 XP
	BadgeText      string    `gorm:"type:varchar(60)" json:"badge_text"`                                     // 角标文字
	BadgeColor     string    `gorm:"type:varchar(30)" json:"badge_color"`                                    // 角标颜色
	IsActive       bool      `gorm:"index" json:"is_active"`                                                 // 是否启用
	SortOrder      int       `gorm:"not null;default:0;index" json:"sort_order"`                             // 排序权重
	CreatedAt      time.Time `gorm:"index" json:"created_at"`                                                // 创建时间
	UpdatedAt      time.Time `json:"updated_at"`                                                             // 更新时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}

// BeforeCreate 生成主键
func (c *Category) BeforeCreate(*gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
