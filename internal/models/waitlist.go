package models

import (
	"time"

	"gorm.io/gorm"
)

// WaitlistEntry 候补名单
type WaitlistEntry struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                                                              // 主键
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`                      // 邮箱
	Status    string    `gorm:"type:varchar(20);not null;index" json:"status" validate:"required,oneof=pending notified converted"` // 状态
	Source    string    `gorm:"type:varchar(120);index" json:"source"`                                                              // 来源
	Metadata  JSON      `json:"metadata"`                                                                                           // 附加信息
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                                                            // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                                                                         // 更新时间
}

// TableName 指定表名
func (WaitlistEntry) TableName() string {
	return "waitlist_entries"
}

// BeforeCreate 生成主键
func (w *WaitlistEntry) BeforeCreate(*gorm.DB) error {
	ensureID(&w.ID)
	return nil
}
