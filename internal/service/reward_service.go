package service

import (
	"strings"

	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/repository"
)

// RewardService 奖励业务服务
type RewardService struct {
	*ResourceService[models.Reward]
	repo repository.RewardRepository
}

// NewRewardService 创建奖励服务
func NewRewardService(repo repository.RewardRepository) *RewardService {
	return &RewardService{
		ResourceService: NewResourceService[models.Reward](repo, ResourceSpec[models.Reward]{
			Name: "rewards",
			Patchable: []string{
				"name", "description", "tier", "xp_required", "earnings_required",
				"badge_icon", "badge_color", "is_active",
			},
			Normalize: func(r *models.Reward) {
				r.Name = strings.TrimSpace(r.Name)
				r.Tier = strings.ToLower(strings.TrimSpace(r.Tier))
				if r.Tier == "" {
					r.Tier = constants.TierBronze
				}
			},
		}),
		repo: repo,
	}
}

// ListForUser 用户已解锁奖励
func (s *RewardService) ListForUser(userID string) ([]models.UserReward, error) {
	return s.repo.ListForUser(userID)
}
