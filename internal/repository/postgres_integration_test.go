//go:build integration
// +build integration

package repository

import (
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	cleanupModels := []interface{}{
		&models.UserReward{},
		&models.Reward{},
		&models.UserClick{},
		&models.User{},
	}
	_ = db.Migrator().DropTable(cleanupModels...)
	if err := db.AutoMigrate(cleanupModels...); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(cleanupModels...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestPostgresUserSearchIsCaseInsensitive(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewUserRepository(db)
	if err := repo.Create(&models.User{Email: "Alice@Example.com", Username: "alice", Tier: constants.TierBronze}); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if err := repo.Create(&models.User{Email: "bob@example.com", Username: "bob", Tier: constants.TierBronze}); err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	rows, err := repo.List(ListQuery{Search: "ALICE"})
	if err != nil {
		t.Fatalf("search users failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Username != "alice" {
		t.Fatalf("unexpected search result: %+v", rows)
	}
}

func TestPostgresIncrementXPIsAtomic(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	user := &models.User{Email: "xp@example.com", Username: "xp", Tier: constants.TierBronze, TotalXP: 100}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	procedures := NewProcedureRepository(db, constants.ProceduresLocal)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := procedures.IncrementXP(user.ID, 50); err != nil {
				t.Errorf("increment failed: %v", err)
			}
		}()
	}
	wg.Wait()

	var reloaded models.User
	if err := db.First(&reloaded, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if reloaded.TotalXP != 1100 {
		t.Fatalf("total xp want 1100 got %d", reloaded.TotalXP)
	}
}

func TestPostgresClickUpsertIncrements(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewActivityRepository(db)
	for i := 0; i < 3; i++ {
		if _, err := repo.UpsertClick("u-1", "p-1", timeNow()); err != nil {
			t.Fatalf("upsert click failed: %v", err)
		}
	}
	click, err := repo.GetClick("u-1", "p-1")
	if err != nil || click == nil {
		t.Fatalf("get click failed: %v", err)
	}
	if click.ClickCount != 3 {
		t.Fatalf("click count want 3 got %d", click.ClickCount)
	}
}
