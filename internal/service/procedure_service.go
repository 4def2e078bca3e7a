package service

import (
	"github.com/admin-nexus/internal/logger"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/queue"
	"github.com/admin-nexus/internal/repository"
)

// ProcedureService XP 累加与奖励评估
type ProcedureService struct {
	repo        repository.ProcedureRepository
	users       repository.ResourceRepository[models.User]
	queueClient *queue.Client
}

// NewProcedureService 创建过程服务
func NewProcedureService(repo repository.ProcedureRepository, users repository.ResourceRepository[models.User], queueClient *queue.Client) *ProcedureService {
	return &ProcedureService{repo: repo, users: users, queueClient: queueClient}
}

// AddXP 原子累加 XP，成功后异步触发奖励评估
func (s *ProcedureService) AddXP(userID string, amount int64) (*models.User, error) {
	if amount <= 0 {
		return nil, ErrInvalidXPAmount
	}
	user, err := s.repo.IncrementXP(userID, amount)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if s.queueClient.Enabled() {
		payload := queue.RewardCheckPayload{UserID: userID, XPAmount: amount}
		if err := s.queueClient.EnqueueRewardCheck(payload); err != nil {
			logger.Warnw("reward_check_enqueue_failed", "user_id", userID, "error", err)
		}
	}
	return user, nil
}

// CheckRewards 评估并解锁奖励，返回本次新解锁的奖励
func (s *ProcedureService) CheckRewards(userID string) ([]models.Reward, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	rewards, err := s.repo.EvaluateRewards(userID)
	if err != nil {
		return nil, err
	}
	if rewards == nil {
		rewards = make([]models.Reward, 0)
	}
	return rewards, nil
}
