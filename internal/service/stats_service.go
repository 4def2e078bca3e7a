package service

import "github.com/admin-nexus/internal/repository"

// StatsService 后台统计服务
type StatsService struct {
	repo repository.StatsRepository
}

// NewStatsService 创建统计服务
func NewStatsService(repo repository.StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

// General 总览统计
func (s *StatsService) General() (repository.GeneralStatsRow, error) {
	return s.repo.GetGeneral()
}

// UsersByTier 各等级人数
func (s *StatsService) UsersByTier() ([]repository.TierCountRow, error) {
	return s.repo.CountUsersByTier()
}
