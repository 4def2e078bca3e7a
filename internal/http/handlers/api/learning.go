package api

import (
	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/http/response"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/service"

	"github.com/gin-gonic/gin"
)

var (
	resCourse   = resource{one: "course", many: "courses"}
	resProgress = resource{one: "course progress", many: "course progress"}
	resReward   = resource{one: "reward", many: "rewards"}
)

// CourseProgressRequest 课程进度请求
type CourseProgressRequest struct {
	UserID      string `json:"userId" binding:"required"`
	Progress    *int   `json:"progress" binding:"required"`
	IsCompleted *bool  `json:"isCompleted"`
}

// ListCourses 课程列表
func (h *Handler) ListCourses(c *gin.Context) {
	courses, err := h.CourseService.List()
	respondList(c, resCourse, courses, err)
}

// ListActiveCourses 启用中的课程
func (h *Handler) ListActiveCourses(c *gin.Context) {
	courses, err := h.CourseService.ListActive(c.Request.Context())
	respondList(c, resCourse, courses, err)
}

// ListUserCourses 启用课程及该用户的进度
func (h *Handler) ListUserCourses(c *gin.Context) {
	userID, ok := requireParam(c, "userId")
	if !ok {
		return
	}
	courses, err := h.CourseService.ListForUser(c.Request.Context(), userID)
	respondList(c, resCourse, courses, err)
}

// GetCourse 课程详情
func (h *Handler) GetCourse(c *gin.Context) {
	getResource[models.Course](c, h.CourseService, resCourse)
}

// CreateCourse 创建课程
func (h *Handler) CreateCourse(c *gin.Context) {
	createResource(c, h.CourseService, resCourse, models.Course{
		DifficultyLevel: constants.DifficultyBeginner,
		IsActive:        true,
	})
}

// UpdateCourse 部分更新课程
func (h *Handler) UpdateCourse(c *gin.Context) {
	updateResource[models.Course](c, h.CourseService, resCourse)
}

// DeleteCourse 删除课程
func (h *Handler) DeleteCourse(c *gin.Context) {
	deleteResource[models.Course](c, h.CourseService, resCourse)
}

// UpdateCourseProgress 写入用户课程进度
func (h *Handler) UpdateCourseProgress(c *gin.Context) {
	courseID, ok := requireParam(c, "courseId")
	if !ok {
		return
	}
	var req CourseProgressRequest
	if !bindRequest(c, &req, "userId and progress are required") {
		return
	}
	progress, err := h.CourseService.UpdateProgress(service.UpdateProgressInput{
		UserID:      req.UserID,
		CourseID:    courseID,
		Progress:    *req.Progress,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		respondServiceError(c, resCourse, resProgress.failed("update", false), err)
		return
	}
	response.SuccessWithMsg(c, "Progress updated successfully", progress)
}

// ListRewards 奖励列表
func (h *Handler) ListRewards(c *gin.Context) {
	rewards, err := h.RewardService.List()
	respondList(c, resReward, rewards, err)
}

// ListUserRewards 用户已解锁奖励
func (h *Handler) ListUserRewards(c *gin.Context) {
	userID, ok := requireParam(c, "userId")
	if !ok {
		return
	}
	rewards, err := h.RewardService.ListForUser(userID)
	respondList(c, resReward, rewards, err)
}

// GetReward 奖励详情
func (h *Handler) GetReward(c *gin.Context) {
	getResource[models.Reward](c, h.RewardService, resReward)
}

// CreateReward 创建奖励
func (h *Handler) CreateReward(c *gin.Context) {
	createResource(c, h.RewardService, resReward, models.Reward{
		Tier:     constants.TierBronze,
		IsActive: true,
	})
}

// UpdateReward 部分更新奖励
func (h *Handler) UpdateReward(c *gin.Context) {
	updateResource[models.Reward](c, h.RewardService, resReward)
}

// DeleteReward 删除奖励
func (h *Handler) DeleteReward(c *gin.Context) {
	deleteResource[models.Reward](c, h.RewardService, resReward)
}

// CheckUserRewards 评估并解锁用户可获得的奖励
func (h *Handler) CheckUserRewards(c *gin.Context) {
	userID, ok := requireParam(c, "userId")
	if !ok {
		return
	}
	rewards, err := h.ProcedureService.CheckRewards(userID)
	if err != nil {
		respondServiceError(c, resUser, "Failed to check rewards", err)
		return
	}
	if rewards == nil {
		rewards = make([]models.Reward, 0)
	}
	response.Success(c, rewards)
}
