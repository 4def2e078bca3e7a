package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/admin-nexus/internal/config"
	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := models.Open("sqlite", dsn, logger.Silent)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := models.MigrateAll(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func rawPatch(t *testing.T, body string) Patch {
	t.Helper()
	var patch Patch
	if err := json.Unmarshal([]byte(body), &patch); err != nil {
		t.Fatalf("decode patch failed: %v", err)
	}
	return patch
}

func TestCategoryScenario(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	created, err := svc.Create(&models.Category{Name: "Tech", IsActive: true})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if created.ID == "" || created.Slug != "tech" {
		t.Fatalf("unexpected created category: %+v", created)
	}

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("get category failed: %v", err)
	}
	if got.Name != created.Name || got.Slug != created.Slug || got.IsActive != created.IsActive {
		t.Fatalf("get should equal created: %+v vs %+v", got, created)
	}

	updated, err := svc.Update(created.ID, rawPatch(t, `{"is_active":false}`))
	if err != nil {
		t.Fatalf("update category failed: %v", err)
	}
	if updated.IsActive {
		t.Fatalf("is_active should be false after update")
	}
	if updated.Name != "Tech" || updated.Slug != "tech" {
		t.Fatalf("other fields must be untouched: %+v", updated)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete category failed: %v", err)
	}
	if _, err := svc.Get(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get after delete want ErrNotFound got %v", err)
	}
	if err := svc.Delete(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete want ErrNotFound got %v", err)
	}
}

func TestCategoryDuplicateSlugAndInUse(t *testing.T) {
	db := setupServiceTestDB(t)
	categories := NewCategoryService(repository.NewCategoryRepository(db))
	products := NewProductService(repository.NewProductRepository(db), categories)

	first, err := categories.Create(&models.Category{Name: "Home Goods"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if _, err := categories.Create(&models.Category{Name: "Other", Slug: "home-goods"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate slug want ErrConflict got %v", err)
	}

	if _, err := products.Create(&models.Product{Name: "Lamp", CategoryID: first.ID}); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if _, err := products.Create(&models.Product{Name: "Ghost", CategoryID: "missing"}); !errors.Is(err, ErrCategoryMissing) {
		t.Fatalf("missing category want ErrCategoryMissing got %v", err)
	}
	if err := categories.Delete(first.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("delete in-use category want ErrCategoryInUse got %v", err)
	}
}

func TestUpdateIgnoresFieldsOutsideAllowList(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	user, err := svc.Create(&models.User{Email: "a@example.com"})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if user.Username != "a" || user.Tier != constants.TierBronze {
		t.Fatalf("defaults not applied: %+v", user)
	}

	updated, err := svc.Update(user.ID, rawPatch(t, `{"full_name":"Ada","id":"hijack","created_at":"2001-01-01"}`))
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != user.ID || updated.FullName != "Ada" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if updated.Email != "a@example.com" {
		t.Fatalf("email should be untouched")
	}
}

func TestUserValidation(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	cases := []struct {
		name string
		user models.User
	}{
		{name: "missing email", user: models.User{Username: "x"}},
		{name: "bad email", user: models.User{Email: "not-an-email"}},
		{name: "bad tier", user: models.User{Email: "t@example.com", Tier: "diamond"}},
		{name: "negative xp", user: models.User{Email: "n@example.com", TotalXP: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user := tc.user
			if _, err := svc.Create(&user); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("want ErrInvalidInput got %v", err)
			}
		})
	}

	// longest_streak 小于 current_streak 不做拦截
	if _, err := svc.Create(&models.User{Email: "s@example.com", CurrentStreak: 5, LongestStreak: 1}); err != nil {
		t.Fatalf("streak combination should be accepted: %v", err)
	}
	if _, err := svc.Create(&models.User{Email: "S@example.com"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate email want ErrConflict got %v", err)
	}
}

func TestGetOrProvision(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	id := uuid.NewString()

	if _, err := svc.GetOrProvision(id, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("anonymous caller want ErrNotFound got %v", err)
	}
	other := &Identity{UserID: uuid.NewString(), Email: "other@example.com"}
	if _, err := svc.GetOrProvision(id, other); !errors.Is(err, ErrNotFound) {
		t.Fatalf("mismatched identity want ErrNotFound got %v", err)
	}

	identity := &Identity{
		UserID:   id,
		Email:    "grace@example.com",
		Metadata: map[string]interface{}{"first_name": "Grace", "last_name": "Hopper"},
	}
	user, err := svc.GetOrProvision(id, identity)
	if err != nil {
		t.Fatalf("provision failed: %v", err)
	}
	if user.ID != id || user.Username != "grace" || user.FullName != "Grace Hopper" {
		t.Fatalf("unexpected provisioned user: %+v", user)
	}
	if user.Tier != constants.TierBronze || user.TotalXP != 0 || user.LastActivityDate == nil {
		t.Fatalf("unexpected defaults: %+v", user)
	}

	again, err := svc.GetOrProvision(id, identity)
	if err != nil || again.ID != id {
		t.Fatalf("second call should return existing row: %+v err=%v", again, err)
	}
}

func TestIdentityServiceParse(t *testing.T) {
	svc := NewIdentityService(config.AuthConfig{JWTSecret: "secret"})
	claims := IdentityClaims{
		Email:            "id@example.com",
		UserMetadata:     map[string]interface{}{"username": "ident"},
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	identity, err := svc.Parse(signed)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if identity.UserID != "user-1" || identity.MetadataString("username") != "ident" {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	forged, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other"))
	if _, err := svc.Parse(forged); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("forged token want ErrInvalidToken got %v", err)
	}
}

func TestAnnouncementDates(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewAnnouncementService(repository.NewAnnouncementRepository(db))
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	start := models.NewDateTime(now.Add(-48 * time.Hour))
	badEnd := models.NewDateTime(now.Add(-72 * time.Hour))
	if _, err := svc.Create(&models.Announcement{Title: "Bad", StartDate: start, EndDate: &badEnd, IsActive: true}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("end before start want ErrInvalidInput got %v", err)
	}
	if _, err := svc.Create(&models.Announcement{Title: "Loud", Priority: 9, StartDate: start}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("priority out of range want ErrInvalidInput got %v", err)
	}

	expiredEnd := models.NewDateTime(now.Add(-time.Hour))
	items := []models.Announcement{
		{Title: "Low", Priority: 1, StartDate: start, IsActive: true},
		{Title: "High", Priority: 5, StartDate: start, IsActive: true, Type: constants.AnnouncementTypeWarning},
		{Title: "Expired", Priority: 3, StartDate: start, EndDate: &expiredEnd, IsActive: true},
		{Title: "Future", Priority: 3, StartDate: models.NewDateTime(now.Add(time.Hour)), IsActive: true},
	}
	for i := range items {
		if _, err := svc.Create(&items[i]); err != nil {
			t.Fatalf("create announcement %s failed: %v", items[i].Title, err)
		}
	}

	live, err := svc.ListActive(t.Context())
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if len(live) != 2 || live[0].Title != "High" || live[1].Title != "Low" {
		t.Fatalf("unexpected live announcements: %+v", live)
	}

	count, err := svc.DeactivateExpired()
	if err != nil {
		t.Fatalf("deactivate expired failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("deactivated want 1 got %d", count)
	}
	expired, _ := svc.Get(items[2].ID)
	if expired.IsActive {
		t.Fatalf("expired announcement should be inactive")
	}
}

func TestReferralStatusIsMonotonic(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewReferralService(repository.NewReferralRepository(db))
	referral, err := svc.Create(&models.Referral{ReferrerID: "u-1", ReferredEmail: "friend@example.com"})
	if err != nil {
		t.Fatalf("create referral failed: %v", err)
	}
	if referral.Status != constants.ReferralStatusPending {
		t.Fatalf("default status want pending got %s", referral.Status)
	}

	completed, err := svc.UpdateStatus(referral.ID, constants.ReferralStatusCompleted)
	if err != nil {
		t.Fatalf("complete referral failed: %v", err)
	}
	if completed.AcceptedAt == nil || completed.CompletedAt == nil {
		t.Fatalf("timestamps should be set: %+v", completed)
	}
	if _, err := svc.UpdateStatus(referral.ID, constants.ReferralStatusPending); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Fatalf("backwards transition want ErrInvalidStatusTransition got %v", err)
	}
	if _, err := svc.UpdateStatus(referral.ID, "lost"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("unknown status want ErrInvalidStatus got %v", err)
	}
}

func TestAddXPAndCheckRewards(t *testing.T) {
	db := setupServiceTestDB(t)
	userRepo := repository.NewUserRepository(db)
	users := NewUserService(userRepo)
	rewards := NewRewardService(repository.NewRewardRepository(db))
	procedures := NewProcedureService(repository.NewProcedureRepository(db, constants.ProceduresLocal), userRepo, nil)

	user, err := users.Create(&models.User{Email: "xp@example.com", TotalXP: 100})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if _, err := rewards.Create(&models.Reward{Name: "Bronze", Tier: constants.TierBronze, XPRequired: 150, IsActive: true}); err != nil {
		t.Fatalf("create reward failed: %v", err)
	}

	if _, err := procedures.AddXP(user.ID, 0); !errors.Is(err, ErrInvalidXPAmount) {
		t.Fatalf("zero xp want ErrInvalidXPAmount got %v", err)
	}
	if _, err := procedures.AddXP("missing", 10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing user want ErrNotFound got %v", err)
	}
	updated, err := procedures.AddXP(user.ID, 50)
	if err != nil {
		t.Fatalf("add xp failed: %v", err)
	}
	if updated.TotalXP != 150 {
		t.Fatalf("total xp want 150 got %d", updated.TotalXP)
	}

	unlocked, err := procedures.CheckRewards(user.ID)
	if err != nil {
		t.Fatalf("check rewards failed: %v", err)
	}
	if len(unlocked) != 1 || unlocked[0].Name != "Bronze" {
		t.Fatalf("unexpected unlocked rewards: %+v", unlocked)
	}
	owned, err := rewards.ListForUser(user.ID)
	if err != nil || len(owned) != 1 {
		t.Fatalf("user rewards want 1 got %d err=%v", len(owned), err)
	}
	if _, err := procedures.CheckRewards("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing user want ErrNotFound got %v", err)
	}
}

func TestCourseProgressForUser(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewCourseService(repository.NewCourseRepository(db), repository.NewCourseProgressRepository(db))
	first, err := svc.Create(&models.Course{Title: "Basics", XPReward: 100, IsActive: true, SortOrder: 1})
	if err != nil {
		t.Fatalf("create course failed: %v", err)
	}
	if _, err := svc.Create(&models.Course{Title: "Advanced", DifficultyLevel: constants.DifficultyAdvanced, IsActive: true, SortOrder: 2}); err != nil {
		t.Fatalf("create course failed: %v", err)
	}
	if _, err := svc.Create(&models.Course{Title: "Bad", DifficultyLevel: "expert"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad difficulty want ErrInvalidInput got %v", err)
	}

	progress, err := svc.UpdateProgress(UpdateProgressInput{UserID: "u-1", CourseID: first.ID, Progress: 100})
	if err != nil {
		t.Fatalf("update progress failed: %v", err)
	}
	if !progress.IsCompleted || progress.XPEarned != 100 || progress.CompletedAt == nil {
		t.Fatalf("completed progress expected: %+v", progress)
	}
	if _, err := svc.UpdateProgress(UpdateProgressInput{UserID: "u-1", CourseID: first.ID, Progress: 101}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("progress > 100 want ErrInvalidInput got %v", err)
	}

	rows, err := svc.ListForUser(t.Context(), "u-1")
	if err != nil {
		t.Fatalf("list for user failed: %v", err)
	}
	if len(rows) != 2 || rows[0].Progress == nil || rows[1].Progress != nil {
		t.Fatalf("unexpected course progress rows: %+v", rows)
	}
}

func TestNotificationsAndWaitlist(t *testing.T) {
	db := setupServiceTestDB(t)
	notifications := NewNotificationService(repository.NewNotificationRepository(db))
	first, err := notifications.Notify("u-1", "Hi", "Welcome", "", nil)
	if err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if first.Type != constants.NotificationTypeGeneral {
		t.Fatalf("default type want general got %s", first.Type)
	}
	if _, err := notifications.Notify("u-1", "Hi", "", constants.NotificationTypeStreak, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing message want ErrInvalidInput got %v", err)
	}
	if _, err := notifications.Notify("u-1", "Streak", "3 days", constants.NotificationTypeStreak, nil); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if _, err := notifications.MarkRead(first.ID); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	unread, err := notifications.ListForUser("u-1", true)
	if err != nil || len(unread) != 1 {
		t.Fatalf("unread want 1 got %d err=%v", len(unread), err)
	}

	waitlist := NewWaitlistService(repository.NewWaitlistRepository(db))
	for _, entry := range []models.WaitlistEntry{
		{Email: "one@example.com", Source: "landing"},
		{Email: "two@example.com", Source: "twitter"},
		{Email: "three@example.com", Source: "landing", Status: constants.WaitlistStatusNotified},
	} {
		e := entry
		if _, err := waitlist.Create(&e); err != nil {
			t.Fatalf("create waitlist entry failed: %v", err)
		}
	}
	rows, err := waitlist.Filter(WaitlistFilter{Source: "landing", Status: constants.WaitlistStatusPending})
	if err != nil || len(rows) != 1 || rows[0].Email != "one@example.com" {
		t.Fatalf("unexpected filter result: %+v err=%v", rows, err)
	}
	if _, err := waitlist.UpdateStatus(rows[0].ID, "unknown"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("invalid status want ErrInvalidStatus got %v", err)
	}
}

func TestActivityClicksAndConversions(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewActivityService(repository.NewActivityRepository(db), repository.NewConversionRepository(db))
	for i := 0; i < 2; i++ {
		if _, err := svc.LogClick("u-1", "p-1"); err != nil {
			t.Fatalf("log click failed: %v", err)
		}
	}
	conversion, err := svc.LogConversion(ConversionInput{
		UserID:           "u-1",
		ProductID:        "p-1",
		ConversionValue:  models.NewMoneyFromFloat(100),
		CommissionEarned: models.NewMoneyFromFloat(12.5),
		XPEarned:         20,
	})
	if err != nil {
		t.Fatalf("log conversion failed: %v", err)
	}
	if conversion.ID == "" {
		t.Fatalf("conversion should have an id")
	}
	rows, err := svc.ListForUser("u-1")
	if err != nil {
		t.Fatalf("list activities failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("activities want 3 got %d", len(rows))
	}
	if _, err := svc.Log(&models.UserActivity{UserID: "u-1", ActivityType: "dance"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown activity type want ErrInvalidInput got %v", err)
	}
}
