package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 联盟推广商品
type Product struct {
	ID                string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                                  // 主键
	CategoryID        string    `gorm:"type:varchar(36);not null;index" json:"category_id" validate:"notblank"` // 分类ID
	Name              string    `gorm:"type:varchar(255);not null" json:"name" validate:"notblank"`             // 名称
	Description       string    `gorm:"type:text" json:"description"`                                           // 描述
	CommissionRate    float64   `gorm:"not null;default:0" json:"commission_rate"`                              // 佣金率
	ConversionRate    float64   `gorm:"not null;default:0" json:"conversion_rate"`                              // 转化率
	XPReward          int       `gorm:"column:xp_reward;not null;default:0" json:"xp_reward" validate:"gte=0"`  // 推广奖励 XP
	AverageOrderValue Money     `gorm:"not null;default:0" json:"average_order_value" validate:"gte=0"`         // 平均客单价
	AffiliateURL      string    `gorm:"column:affiliate_url;type:varchar(1000)" json:"affiliate_url"`           // 推广链接
	ProductURL        string    `gorm:"column:product_url;type:varchar(1000)" json:"product_url"`               // 商品链接
	ImageURL          string    `gorm:"column:image_url;type:varchar(1000)" json:"image_url"`                   // 图片
	IsActive          bool      `gorm:"index" json:"is_active"`                                                 // 是否上架
	CreatedAt         time.Time `gorm:"index" json:"created_at"`                                                // 创建时间
	UpdatedAt         time.Time `json:"updated_at"`                                                             // 更新时间

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty" validate:"-"` // 所属分类（按需加载）
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// BeforeCreate 生成主键
func (p *Product) BeforeCreate(*gorm.DB) error {
	ensureID(&p.ID)
	return nil
}
