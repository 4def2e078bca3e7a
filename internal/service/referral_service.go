package service

import (
	"strings"
	"time"

	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/repository"
)

// ReferralService 邀请业务服务
type ReferralService struct {
	*ResourceService[models.Referral]
}

// NewReferralService 创建邀请服务
func NewReferralService(repo repository.ResourceRepository[models.Referral]) *ReferralService {
	return &ReferralService{
		ResourceService: NewResourceService(repo, ResourceSpec[models.Referral]{
			Name:      "referrals",
			Patchable: []string{"referred_email", "referral_code", "bonus_earned", "xp_earned"},
			Normalize: func(r *models.Referral) {
				r.ReferredEmail = strings.ToLower(strings.TrimSpace(r.ReferredEmail))
				if r.Status == "" {
					r.Status = constants.ReferralStatusPending
				}
			},
		}),
	}
}

// List 全部邀请（含邀请人）
func (s *ReferralService) List() ([]models.Referral, error) {
	return s.Query(repository.ListQuery{Preload: []string{"Referrer"}})
}

// ListForUser 用户发出的邀请
func (s *ReferralService) ListForUser(userID string) ([]models.Referral, error) {
	return s.ListBy(map[string]interface{}{"referrer_id": userID})
}

func referralStatusRank(status string) int {
	for i, candidate := range constants.ReferralStatuses {
		if candidate == status {
			return i
		}
	}
	return -1
}

// UpdateStatus 推进邀请状态（只能前进），并记录对应时间
func (s *ReferralService) UpdateStatus(id, status string) (*models.Referral, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	next := referralStatusRank(status)
	if next < 0 {
		return nil, ErrInvalidStatus
	}
	referral, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	current := referralStatusRank(referral.Status)
	if next < current {
		return nil, ErrInvalidStatusTransition
	}
	if next == current {
		return referral, nil
	}

	now := models.NewDateTime(time.Now())
	referral.Status = status
	columns := []string{"status"}
	if next >= referralStatusRank(constants.ReferralStatusAccepted) && referral.AcceptedAt == nil {
		referral.AcceptedAt = &now
		columns = append(columns, "accepted_at")
	}
	if status == constants.ReferralStatusCompleted {
		referral.CompletedAt = &now
		columns = append(columns, "completed_at")
	}
	return s.Save(id, referral, columns)
}
