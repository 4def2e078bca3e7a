package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification 用户通知
type Notification struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                                                                                      // 主键
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"user_id" validate:"notblank"`                                                         // 用户ID
	Title     string    `gorm:"type:varchar(255);not null" json:"title" validate:"notblank"`                                                                // 标题
	Message   string    `gorm:"type:text;not null" json:"message" validate:"notblank"`                                                                      // 内容
	Type      string    `gorm:"type:varchar(20);not null;index" json:"type" validate:"required,oneof=achievement milestone streak referral course general"` // 类型
	IsRead    bool      `gorm:"index" json:"is_read"`                                                                                                       // 是否已读
	Metadata  JSON      `json:"metadata"`                                                                                                                   // 附加信息
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                                                                                    // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                                                                                                 // 更新时间

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"` // 用户信息
}

// TableName 指定表名
func (Notification) TableName() string {
	return "notifications"
}

// BeforeCreate 生成主键
func (n *Notification) BeforeCreate(*gorm.DB) error {
	ensureID(&n.ID)
	return nil
}
