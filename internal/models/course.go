package models

import (
	"time"

	"gorm.io/gorm"
)

// Course 课程
type Course struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                                                                      // 主键
	Title           string    `gorm:"type:varchar(255);not null" json:"title" validate:"notblank"`                                                // 标题
	Description     string    `gorm:"type:text" json:"description"`                                                                               // 描述
	ThumbnailURL    string    `gorm:"column:thumbnail_url;type:varchar(1000)" json:"thumbnail_url"`                                               // 封面
	XPReward        int       `gorm:"column:xp_reward;not null;default:0" json:"xp_reward" validate:"gte=0"`                                      // 完成奖励 XP
	RevenueImpact   string    `gorm:"type:varchar(120)" json:"revenue_impact"`                                                                    // 收益影响描述
	DurationHours   float64   `gorm:"not null;default:0" json:"duration_hours"`                                                                   // 时长（小时）
	DifficultyLevel string    `gorm:"type:varchar(20);not null" json:"difficulty_level" validate:"required,oneof=beginner intermediate advanced"` // 难度
	IsPremium       bool      `json:"is_premium"`                                                                                                 // 是否付费
	IsActive        bool      `gorm:"index" json:"is_active"`                                                                                     // 是否启用
	SortOrder       int       `gorm:"not null;default:0;index" json:"sort_order"`                                                                 // 排序权重
	CreatedAt       time.Time `gorm:"index" json:"created_at"`                                                                                    // 创建时间
	UpdatedAt       time.Time `json:"updated_at"`                                                                                                 // 更新时间
}

// TableName 指定表名
func (Course) TableName() string {
	return "courses"
}

// BeforeCreate 生成主键
func (c *Course) BeforeCreate(*gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

// UserCourseProgress 用户课程进度
type UserCourseProgress struct {
	ID                 string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                                           // 主键
	UserID             string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_progress_user_course" json:"user_id"`   // 用户ID
	CourseID           string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_progress_user_course" json:"course_id"` // 课程ID
	ProgressPercentage int       `gorm:"not null;default:0" json:"progress_percentage"`                                   // 进度 0-100
	IsCompleted        bool      `json:"is_completed"`                                                                    // 是否完成
	XPEarned           int       `gorm:"column:xp_earned;not null;default:0" json:"xp_earned"`                            // 获得 XP
	StartedAt          *DateTime `json:"started_at"`                                                                      // 开始时间
	CompletedAt        *DateTime `json:"completed_at"`                                                                    // 完成时间
	CreatedAt          time.Time `json:"created_at"`                                                                      // 创建时间
	UpdatedAt          time.Time `json:"updated_at"`                                                                      // 更新时间
}

// TableName 指定表名
func (UserCourseProgress) TableName() string {
	return "user_course_progress"
}

// BeforeCreate 生成主键
func (p *UserCourseProgress) BeforeCreate(*gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

// CourseWithProgress 课程及指定用户的进度
type CourseWithProgress struct {
	Course
	Progress *UserCourseProgress `json:"progress"`
}
