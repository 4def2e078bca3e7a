package models

import (
	"time"

	"gorm.io/gorm"
)

// Announcement 站内公告
type Announcement struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                                                      // 主键
	Title     string    `gorm:"type:varchar(255);not null" json:"title" validate:"notblank"`                                // 标题
	Content   string    `gorm:"type:text" json:"content"`                                                                   // 内容
	Type      string    `gorm:"type:varchar(20);not null" json:"type" validate:"required,oneof=info warning success error"` // 类型
	Priority  int       `gorm:"not null;default:1;index" json:"priority" validate:"min=1,max=5"`                            // 优先级 1-5
	StartDate DateTime  `gorm:"not null;index" json:"start_date"`                                                           // 生效时间
	EndDate   *DateTime `gorm:"index" json:"end_date"`                                                                      // 失效时间（可空）
	IsActive  bool      `gorm:"index" json:"is_active"`                                                                     // 是否启用
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                                                    // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                                                                 // 更新时间
}

// TableName 指定表名
func (Announcement) TableName() string {
	return "announcements"
}

// BeforeCreate 生成主键
func (a *Announcement) BeforeCreate(*gorm.DB) error {
	ensureID(&a.ID)
	return nil
}

// LiveAt 判断公告在指定时间是否处于展示窗口
func (a Announcement) LiveAt(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if !a.StartDate.IsZero() && a.StartDate.After(now) {
		return false
	}
	if a.EndDate != nil && !a.EndDate.IsZero() && a.EndDate.Before(now) {
		return false
	}
	return true
}
