package service

import (
	"context"
	"strings"
	"time"

	"github.com/admin-nexus/internal/cache"
	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/logger"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/repository"
)

var activeCoursesKey = cache.ListKey("courses", "active")

// CourseService 课程业务服务
type CourseService struct {
	*ResourceService[models.Course]
	progressRepo repository.CourseProgressRepository
}

// NewCourseService 创建课程服务
func NewCourseService(repo repository.ResourceRepository[models.Course], progressRepo repository.CourseProgressRepository) *CourseService {
	return &CourseService{
		ResourceService: NewResourceService(repo, ResourceSpec[models.Course]{
			Name: "courses",
			Patchable: []string{
				"title", "description", "thumbnail_url", "xp_reward", "revenue_impact",
				"duration_hours", "difficulty_level", "is_premium", "is_active", "sort_order",
			},
			Normalize: func(c *models.Course) {
				c.Title = strings.TrimSpace(c.Title)
				c.DifficultyLevel = strings.ToLower(strings.TrimSpace(c.DifficultyLevel))
				if c.DifficultyLevel == "" {
					c.DifficultyLevel = constants.DifficultyBeginner
				}
			},
			CacheKeys: []string{activeCoursesKey},
		}),
		progressRepo: progressRepo,
	}
}

// ListActive 启用中的课程（按 sort_order），优先读缓存
func (s *CourseService) ListActive(ctx context.Context) ([]models.Course, error) {
	if items, hit, err := cache.GetList[models.Course](ctx, activeCoursesKey); err == nil && hit {
		return items, nil
	}
	items, err := s.ListBy(map[string]interface{}{"is_active": true})
	if err != nil {
		return nil, err
	}
	if err := cache.SetList(ctx, activeCoursesKey, items); err != nil {
		logger.Warnw("cache_set_failed", "key", activeCoursesKey, "error", err)
	}
	return items, nil
}

// ListForUser 启用中的课程附带该用户进度（无进度为 null）
func (s *CourseService) ListForUser(ctx context.Context, userID string) ([]models.CourseWithProgress, error) {
	courses, err := s.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	progressRows, err := s.progressRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	byCourse := make(map[string]*models.UserCourseProgress, len(progressRows))
	for i := range progressRows {
		byCourse[progressRows[i].CourseID] = &progressRows[i]
	}
	result := make([]models.CourseWithProgress, 0, len(courses))
	for _, course := range courses {
		result = append(result, models.CourseWithProgress{Course: course, Progress: byCourse[course.ID]})
	}
	return result, nil
}

// UpdateProgressInput 课程进度更新输入
type UpdateProgressInput struct {
	UserID      string `json:"userId" validate:"notblank"`
	CourseID    string `json:"courseId"`
	Progress    int    `json:"progress" validate:"min=0,max=100"`
	IsCompleted *bool  `json:"isCompleted"`
}

// UpdateProgress 写入课程进度；完成时记录完成时间与课程 XP
func (s *CourseService) UpdateProgress(input UpdateProgressInput) (*models.UserCourseProgress, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	course, err := s.Get(input.CourseID)
	if err != nil {
		return nil, err
	}

	completed := input.Progress >= 100
	if input.IsCompleted != nil {
		completed = *input.IsCompleted
	}
	now := models.NewDateTime(time.Now())
	row := &models.UserCourseProgress{
		UserID:             input.UserID,
		CourseID:           course.ID,
		ProgressPercentage: input.Progress,
		IsCompleted:        completed,
		StartedAt:          &now,
	}
	if completed {
		row.CompletedAt = &now
		row.XPEarned = course.XPReward
	}
	return s.progressRepo.Upsert(row)
}
