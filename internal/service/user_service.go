package service

import (
	"errors"
	"strings"
	"time"

	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/logger"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/repository"
)

// UserService 用户业务服务
type UserService struct {
	*ResourceService[models.User]
}

// NewUserService 创建用户服务
func NewUserService(repo repository.ResourceRepository[models.User]) *UserService {
	return &UserService{
		ResourceService: NewResourceService(repo, ResourceSpec[models.User]{
			Name: "users",
			Patchable: []string{
				"email", "username", "full_name", "avatar_url", "tier",
				"total_xp", "total_earnings", "current_streak", "longest_streak", "last_activity_date",
			},
			Unique: func(u *models.User) map[string]interface{} {
				return map[string]interface{}{"email": u.Email, "username": u.Username}
			},
			Normalize: normalizeUser,
		}),
	}
}

func normalizeUser(u *models.User) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Username = strings.TrimSpace(u.Username)
	u.FullName = strings.TrimSpace(u.FullName)
	if u.Tier == "" {
		u.Tier = constants.TierBronze
	}
	if u.Username == "" {
		u.Username = emailLocalPart(u.Email)
	}
}

func emailLocalPart(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	return local
}

// GetOrProvision 获取用户；不存在且调用者身份与 id 一致时创建默认档案
func (s *UserService) GetOrProvision(id string, identity *Identity) (*models.User, error) {
	user, err := s.Get(id)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if identity == nil || identity.UserID != id || strings.TrimSpace(identity.Email) == "" {
		return nil, ErrNotFound
	}

	now := models.NewDateTime(time.Now())
	profile := &models.User{
		ID:               id,
		Email:            identity.Email,
		Username:         provisionUsername(identity),
		FullName:         provisionFullName(identity),
		AvatarURL:        identity.MetadataString("avatar_url"),
		Tier:             constants.TierBronze,
		LastActivityDate: &now,
	}
	created, err := s.Create(profile)
	if err != nil {
		return nil, err
	}
	logger.Infow("user_provisioned", "user_id", id, "email", created.Email)
	return created, nil
}

func provisionUsername(identity *Identity) string {
	if username := identity.MetadataString("username"); username != "" {
		return username
	}
	return emailLocalPart(identity.Email)
}

func provisionFullName(identity *Identity) string {
	if fullName := identity.MetadataString("full_name"); fullName != "" {
		return fullName
	}
	first := identity.MetadataString("first_name")
	last := identity.MetadataString("last_name")
	if joined := strings.TrimSpace(first + " " + last); joined != "" {
		return joined
	}
	return emailLocalPart(identity.Email)
}
