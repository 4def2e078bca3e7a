package queue

import (
	"encoding/json"

	"github.com/admin-nexus/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskRewardCheck XP 变动后的奖励评估任务
	TaskRewardCheck = constants.TaskRewardCheck
)

// RewardCheckPayload 奖励评估任务载荷
type RewardCheckPayload struct {
	UserID   string `json:"user_id"`
	XPAmount int64  `json:"xp_amount"`
}

// NewRewardCheckTask 创建奖励评估任务
func NewRewardCheckTask(payload RewardCheckPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskRewardCheck, body), nil
}

// ParseRewardCheckPayload 解析奖励评估任务载荷
func ParseRewardCheckPayload(task *asynq.Task) (RewardCheckPayload, error) {
	var payload RewardCheckPayload
	if task == nil {
		return payload, nil
	}
	err := json.Unmarshal(task.Payload(), &payload)
	return payload, err
}
