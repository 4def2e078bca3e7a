package models

import (
	"time"

	"gorm.io/gorm"
)

// Transaction 钱包流水
type Transaction struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                                                                      // 主键
	UserID      string    `gorm:"type:varchar(36);not null;index" json:"user_id" validate:"notblank"`                                         // 用户ID
	Type        string    `gorm:"type:varchar(40);not null;index" json:"type" validate:"notblank"`                                            // 类型
	Amount      Money     `gorm:"not null;default:0" json:"amount"`                                                                           // 金额
	Status      string    `gorm:"type:varchar(20);not null;index" json:"status" validate:"required,oneof=pending completed failed cancelled"` // 状态
	Description string    `gorm:"type:text" json:"description"`                                                                               // 描述
	ReferenceID string    `gorm:"type:varchar(120)" json:"reference_id"`                                                                      // 外部引用
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                                                                    // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                                                                                 // 更新时间

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"` // 用户信息
}

// TableName 指定表名
func (Transaction) TableName() string {
	return "wallet_transactions"
}

// BeforeCreate 生成主键
func (t *Transaction) BeforeCreate(*gorm.DB) error {
	ensureID(&t.ID)
	return nil
}
