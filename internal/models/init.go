package models

import (
	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/logger"
)

var defaultRewardNames = map[string]string{
	constants.TierBronze:   "Bronze Creator",
	constants.TierSilver:   "Silver Creator",
	constants.TierGold:     "Gold Creator",
	constants.TierPlatinum: "Platinum Creator",
}

var defaultBadgeColors = map[string]string{
	constants.TierBronze:   "#cd7f32",
	constants.TierSilver:   "#c0c0c0",
	constants.TierGold:     "#ffd700",
	constants.TierPlatinum: "#e5e4e2",
}

// InitDefaultRewards 空库时写入按等级门槛的默认奖励
func InitDefaultRewards() error {
	var count int64
	if err := DB.Model(&Reward{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rewards := make([]Reward, 0, len(constants.Tiers))
	for _, tier := range constants.Tiers {
		rewards = append(rewards, Reward{
			Name:        defaultRewardNames[tier],
			Description: "Reach " + tier + " tier",
			Tier:        tier,
			XPRequired:  constants.DefaultTierThresholds[tier],
			BadgeIcon:   "award",
			BadgeColor:  defaultBadgeColors[tier],
			IsActive:    true,
		})
	}
	if err := DB.Create(&rewards).Error; err != nil {
		return err
	}
	logger.Infow("default_rewards_created", "count", len(rewards))
	return nil
}
