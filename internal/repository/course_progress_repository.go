package repository

import (
	"errors"

	"github.com/admin-nexus/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CourseProgressRepository 课程进度数据访问接口
type CourseProgressRepository interface {
	Get(userID, courseID string) (*models.UserCourseProgress, error)
	ListByUser(userID string) ([]models.UserCourseProgress, error)
	Upsert(progress *models.UserCourseProgress) (*models.UserCourseProgress, error)
}

// GormCourseProgressRepository GORM 实现
type GormCourseProgressRepository struct {
	db *gorm.DB
}

// NewCourseProgressRepository 创建课程进度仓库
func NewCourseProgressRepository(db *gorm.DB) *GormCourseProgressRepository {
	return &GormCourseProgressRepository{db: db}
}

// Get 获取用户在某课程的进度
func (r *GormCourseProgressRepository) Get(userID, courseID string) (*models.UserCourseProgress, error) {
	var progress models.UserCourseProgress
	if err := r.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &progress, nil
}

// ListByUser 获取用户全部课程进度
func (r *GormCourseProgressRepository) ListByUser(userID string) ([]models.UserCourseProgress, error) {
	rows := make([]models.UserCourseProgress, 0)
	if err := r.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Upsert 按 (user_id, course_id) 写入进度
func (r *GormCourseProgressRepository) Upsert(progress *models.UserCourseProgress) (*models.UserCourseProgress, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"progress_percentage",
			"is_completed",
			"xp_earned",
			"completed_at",
			"updated_at",
		}),
	}).Create(progress).Error
	if err != nil {
		return nil, err
	}
	return r.Get(progress.UserID, progress.CourseID)
}
