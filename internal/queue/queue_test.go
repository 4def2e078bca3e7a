package queue

import (
	"strconv"
	"testing"

	"github.com/admin-nexus/internal/config"

	"github.com/alicebob/miniredis/v2"
)

func TestDisabledClientSkipsEnqueue(t *testing.T) {
	client, err := NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if client.Enabled() {
		t.Fatalf("client should be disabled")
	}
	if err := client.EnqueueRewardCheck(RewardCheckPayload{UserID: "u-1", XPAmount: 10}); err != nil {
		t.Fatalf("disabled enqueue should be a no-op, got %v", err)
	}
}

func TestRewardCheckTaskRoundTrip(t *testing.T) {
	task, err := NewRewardCheckTask(RewardCheckPayload{UserID: "u-1", XPAmount: 50})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if task.Type() != TaskRewardCheck {
		t.Fatalf("task type want %s got %s", TaskRewardCheck, task.Type())
	}
	payload, err := ParseRewardCheckPayload(task)
	if err != nil {
		t.Fatalf("parse payload failed: %v", err)
	}
	if payload.UserID != "u-1" || payload.XPAmount != 50 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestBuildServerConfigDefaults(t *testing.T) {
	opt, cfg := BuildServerConfig(&config.QueueConfig{Host: "redis", Port: 6380})
	if opt.Addr != "redis:6380" {
		t.Fatalf("addr want redis:6380 got %s", opt.Addr)
	}
	if cfg.Concurrency != 10 || cfg.Queues[DefaultQueue] != 1 {
		t.Fatalf("unexpected server config: %+v", cfg)
	}
}

func TestEnqueueRewardCheckIgnoresDuplicates(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatalf("parse port failed: %v", err)
	}
	client, err := NewClient(&config.QueueConfig{Enabled: true, Host: mr.Host(), Port: port})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	defer client.Close()

	payload := RewardCheckPayload{UserID: "u-1", XPAmount: 25}
	if err := client.EnqueueRewardCheck(payload); err != nil {
		t.Fatalf("first enqueue failed: %v", err)
	}
	if err := client.EnqueueRewardCheck(payload); err != nil {
		t.Fatalf("duplicate enqueue should be swallowed, got %v", err)
	}
}
