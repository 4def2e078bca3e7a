package models

import (
	"time"

	"gorm.io/gorm"
)

// ProductCategory 商品与分类的多对多关联
type ProductCategory struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                                                             // 主键
	ProductID  string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_product_category" json:"product_id" validate:"notblank"`  // 商品ID
	CategoryID string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_product_category" json:"category_id" validate:"notblank"` // 分类ID
	IsPrimary  bool      `json:"is_primary"`                                                                                        // 是否主分类
	CreatedAt  time.Time `json:"created_at"`                                                                                        // 创建时间

	Product  *Product  `gorm:"foreignKey:ProductID" json:"products,omitempty" validate:"-"`    // 商品
	Category *Category `gorm:"foreignKey:CategoryID" json:"categories,omitempty" validate:"-"` // 分类
}

// TableName 指定表名
func (ProductCategory) TableName() string {
	return "product_categories"
}

// BeforeCreate 生成主键
func (p *ProductCategory) BeforeCreate(*gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

// ProductReview 商品评价
type ProductReview struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                                 // 主键
	ProductID  string    `gorm:"type:varchar(36);not null;index" json:"product_id" validate:"notblank"` // 商品ID
	UserID     string    `gorm:"type:varchar(36);index" json:"user_id"`                                 // 用户ID
	Rating     int       `gorm:"not null" json:"rating" validate:"min=1,max=5"`                         // 评分 1-5
	Comment    string    `gorm:"type:text" json:"comment"`                                              // 评语
	IsApproved bool      `gorm:"index" json:"is_approved"`                                              // 是否审核通过
	CreatedAt  time.Time `gorm:"index" json:"created_at"`                                               // 创建时间
	UpdatedAt  time.Time `json:"updated_at"`                                                            // 更新时间
}

// TableName 指定表名
func (ProductReview) TableName() string {
	return "product_reviews"
}

// BeforeCreate 生成主键
func (p *ProductReview) BeforeCreate(*gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

// TimelineStep 首页流程步骤
type TimelineStep struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                       // 主键
	Title       string    `gorm:"type:varchar(160);not null" json:"title" validate:"notblank"` // 标题
	Description string    `gorm:"type:text" json:"description"`                                // 描述
	Icon        string    `gorm:"type:varchar(120)" json:"icon"`                               // 图标
	SortOrder   int       `gorm:"not null;default:0;index" json:"sort_order"`                  // 排序
	IsActive    bool      `gorm:"index" json:"is_active"`                                      // 是否启用
	CreatedAt   time.Time `json:"created_at"`                                                  // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                                  // 更新时间
}

// TableName 指定表名
func (TimelineStep) TableName() string {
	return "timeline_steps"
}

// BeforeCreate 生成主键
func (s *TimelineStep) BeforeCreate(*gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

// TrustBadge 信任徽章
type TrustBadge struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                       // 主键
	Title       string    `gorm:"type:varchar(160);not null" json:"title" validate:"notblank"` // 标题
	Description string    `gorm:"type:text" json:"description"`                                // 描述
	Icon        string    `gorm:"type:varchar(120)" json:"icon"`                               // 图标
	SortOrder   int       `gorm:"not null;default:0;index" json:"sort_order"`                  // 排序
	IsActive    bool      `gorm:"index" json:"is_active"`                                      // 是否启用
	CreatedAt   time.Time `json:"created_at"`                                                  // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                                  // 更新时间
}

// TableName 指定表名
func (TrustBadge) TableName() string {
	return "trust_badges"
}

// BeforeCreate 生成主键
func (b *TrustBadge) BeforeCreate(*gorm.DB) error {
	ensureID(&b.ID)
	return nil
}

// NavigationItem 导航菜单项
type NavigationItem struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                       // 主键
	Label     string    `gorm:"type:varchar(120);not null" json:"label" validate:"notblank"` // 文案
	Href      string    `gorm:"type:varchar(500);not null" json:"href" validate:"notblank"`  // 链接
	Icon      string    `gorm:"type:varchar(120)" json:"icon"`                               // 图标
	ParentID  *string   `gorm:"type:varchar(36);index" json:"parent_id"`                     // 父级
	SortOrder int       `gorm:"not null;default:0;index" json:"sort_order"`                  // 排序
	IsActive  bool      `gorm:"index" json:"is_active"`                                      // 是否启用
	CreatedAt time.Time `json:"created_at"`                                                  // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                                  // 更新时间
}

// TableName 指定表名
func (NavigationItem) TableName() string {
	return "navigation_items"
}

// BeforeCreate 生成主键
func (n *NavigationItem) BeforeCreate(*gorm.DB) error {
	ensureID(&n.ID)
	return nil
}
