package worker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/admin-nexus/internal/config"
	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/logger"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/provider"
	"github.com/admin-nexus/internal/queue"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupConsumer(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	logger.L = zap.NewNop()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := models.Open("sqlite", dsn, gormlogger.Silent)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, models.MigrateAll(db))
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg := &config.Config{}
	return NewConsumer(provider.NewContainerWithDB(cfg, db, nil)), db
}

func TestProcessRewardCheckNotifiesNewUnlocks(t *testing.T) {
	consumer, db := setupConsumer(t)

	user := &models.User{Email: "a@example.com", Username: "a", Tier: constants.TierBronze, TotalXP: 150}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(&models.Reward{Name: "Starter", Tier: constants.TierBronze, XPRequired: 100, IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Reward{Name: "Veteran", Tier: constants.TierGold, XPRequired: 1000, IsActive: true}).Error)

	payload := queue.RewardCheckPayload{UserID: user.ID, XPAmount: 50}
	sent, err := consumer.processRewardCheck(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	notes, err := consumer.NotificationService.ListForUser(user.ID, false)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, constants.NotificationTypeAchievement, notes[0].Type)
	assert.Contains(t, notes[0].Message, "Starter")

	// 已解锁的奖励不会重复通知
	sent, err = consumer.processRewardCheck(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestProcessRewardCheckMissingUser(t *testing.T) {
	consumer, _ := setupConsumer(t)

	sent, err := consumer.processRewardCheck(context.Background(), queue.RewardCheckPayload{UserID: uuid.NewString()})
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestHandleRewardCheckInvalidPayloadSkipsRetry(t *testing.T) {
	consumer, _ := setupConsumer(t)

	err := consumer.handleRewardCheck(context.Background(), asynq.NewTask(queue.TaskRewardCheck, []byte("{bad")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestExpireAnnouncements(t *testing.T) {
	consumer, db := setupConsumer(t)

	past := models.NewDateTime(time.Now().Add(-time.Hour))
	future := models.NewDateTime(time.Now().Add(time.Hour))
	start := models.NewDateTime(time.Now().Add(-2 * time.Hour))
	expired := &models.Announcement{Title: "old", Type: "info", Priority: 1, StartDate: start, EndDate: &past, IsActive: true}
	live := &models.Announcement{Title: "new", Type: "info", Priority: 1, StartDate: start, EndDate: &future, IsActive: true}
	require.NoError(t, db.Create(expired).Error)
	require.NoError(t, db.Create(live).Error)

	count, err := consumer.expireAnnouncements()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := consumer.AnnouncementService.Get(expired.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	got, err = consumer.AnnouncementService.Get(live.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestExpireInterval(t *testing.T) {
	assert.Equal(t, time.Minute, expireInterval(config.WorkerConfig{}))
	assert.Equal(t, 5*time.Second, expireInterval(config.WorkerConfig{AnnouncementExpireIntervalSeconds: 5}))
}

func TestNewServiceRequiresQueue(t *testing.T) {
	_, err := NewService(&config.QueueConfig{Enabled: false}, config.WorkerConfig{}, &Consumer{})
	assert.Error(t, err)
	_, err = NewService(&config.QueueConfig{Enabled: true}, config.WorkerConfig{}, nil)
	assert.Error(t, err)
}
