package worker

import (
	"context"
	"errors"
	"time"

	"github.com/admin-nexus/internal/config"
	"github.com/admin-nexus/internal/logger"
	"github.com/admin-nexus/internal/queue"

	"github.com/hibiken/asynq"
)

const (
	defaultAnnouncementExpireInterval = time.Minute
)

// Service 异步队列服务
type Service struct {
	name           string
	server         *asynq.Server
	mux            *asynq.ServeMux
	consumer       *Consumer
	expireInterval time.Duration
}

// NewService 创建异步队列服务
func NewService(cfg *config.QueueConfig, workerCfg config.WorkerConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:           "worker",
		server:         server,
		mux:            mux,
		consumer:       consumer,
		expireInterval: expireInterval(workerCfg),
	}, nil
}

func expireInterval(cfg config.WorkerConfig) time.Duration {
	if cfg.AnnouncementExpireIntervalSeconds <= 0 {
		return defaultAnnouncementExpireInterval
	}
	return time.Duration(cfg.AnnouncementExpireIntervalSeconds) * time.Second
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start 启动服务
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.Container != nil && s.consumer.AnnouncementService != nil {
		go s.runAnnouncementExpireLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop 停止服务
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

func (s *Service) runAnnouncementExpireLoop(ctx context.Context) {
	if s == nil || s.consumer == nil {
		return
	}
	interval := s.expireInterval
	if interval <= 0 {
		interval = defaultAnnouncementExpireInterval
	}
	runOnce := func() {
		count, err := s.consumer.expireAnnouncements()
		if err != nil {
			logger.Warnw("worker_announcement_expire_failed", "error", err)
			return
		}
		if count > 0 {
			logger.Infow("worker_announcement_expired", "count", count)
		}
	}
	runOnce()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}

// expireAnnouncements 关闭已过期公告
func (c *Consumer) expireAnnouncements() (count int, err error) {
	defer func() {
		if c.Metrics != nil {
			c.Metrics.TaskDone("announcement:expire", err)
		}
	}()
	return c.AnnouncementService.DeactivateExpired()
}
