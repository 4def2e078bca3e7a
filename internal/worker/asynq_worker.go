package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/logger"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/provider"
	"github.com/admin-nexus/internal/queue"
	"github.com/admin-nexus/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{Container: c}
}

// Register 注册任务处理器
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		return
	}
	mux.HandleFunc(queue.TaskRewardCheck, c.handleRewardCheck)
}

func (c *Consumer) handleRewardCheck(ctx context.Context, task *asynq.Task) (err error) {
	defer func() {
		if c.Metrics != nil {
			c.Metrics.TaskDone(queue.TaskRewardCheck, err)
		}
	}()
	payload, err := queue.ParseRewardCheckPayload(task)
	if err != nil {
		logger.Warnw("worker_reward_check_payload_invalid", "error", err)
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	if payload.UserID == "" {
		return nil
	}
	_, err = c.processRewardCheck(ctx, payload)
	return err
}

// processRewardCheck 评估奖励并为新解锁的奖励发送成就通知，返回发送数量
func (c *Consumer) processRewardCheck(ctx context.Context, payload queue.RewardCheckPayload) (int, error) {
	log := logger.FromContext(ctx).With("task", queue.TaskRewardCheck)
	unlocked, err := c.ProcedureService.CheckRewards(payload.UserID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			log.Infow("worker_reward_check_user_missing", "user_id", payload.UserID)
			return 0, nil
		}
		log.Errorw("worker_reward_check_failed", "user_id", payload.UserID, "error", err)
		return 0, err
	}
	sent := 0
	for _, reward := range unlocked {
		metadata := models.JSON{
			"reward_id": reward.ID,
			"tier":      reward.Tier,
			"xp_amount": payload.XPAmount,
		}
		title := "Reward unlocked"
		message := fmt.Sprintf("You unlocked %s", reward.Name)
		if _, err := c.NotificationService.Notify(payload.UserID, title, message, constants.NotificationTypeAchievement, metadata); err != nil {
			log.Warnw("worker_reward_notify_failed", "user_id", payload.UserID, "reward_id", reward.ID, "error", err)
			continue
		}
		sent++
	}
	if len(unlocked) > 0 {
		log.Infow("worker_reward_check_done", "user_id", payload.UserID, "unlocked", len(unlocked), "notified", sent)
	}
	return sent, nil
}
