package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/admin-nexus/internal/cache"
	"github.com/admin-nexus/internal/config"
	"github.com/admin-nexus/internal/logger"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/provider"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return setupTestRouterWithConfig(t, nil)
}

func setupTestRouterWithConfig(t *testing.T, adjust func(*config.Config)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.L = zap.NewNop()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := models.Open("sqlite", dsn, gormlogger.Silent)
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

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode, Version: "test"},
		Auth:   config.AuthConfig{JWTSecret: "secret"},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	if adjust != nil {
		adjust(cfg)
	}
	return SetupRouter(cfg, provider.NewContainerWithDB(cfg, db, nil))
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body failed: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestCreateUserValidation(t *testing.T) {
	r := setupTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/users", map[string]interface{}{"username": "nomail"})
	if w.Code != http.StatusBadRequest || env.Success || env.Error == "" {
		t.Fatalf("missing email want 400 envelope, got %d %s", w.Code, w.Body.String())
	}

	w, env = doJSON(t, r, http.MethodPost, "/api/users", map[string]interface{}{"email": "Ana@Example.com"})
	if w.Code != http.StatusCreated || !env.Success {
		t.Fatalf("valid user want 201, got %d %s", w.Code, w.Body.String())
	}
	var user models.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("decode user failed: %v", err)
	}
	if user.ID == "" || user.Email != "ana@example.com" || user.Tier != "bronze" {
		t.Fatalf("unexpected created user %+v", user)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/api/users", map[string]interface{}{"email": "ana@example.com", "username": "other"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate email want 400, got %d", w.Code)
	}
}

func TestEmptyListAndNotFound(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"success":true,"data":[]}` {
		t.Fatalf("empty list body mismatch: %d %s", w.Code, w.Body.String())
	}

	w, env := doJSON(t, r, http.MethodGet, "/api/products/"+uuid.NewString(), nil)
	if w.Code != http.StatusNotFound || env.Error != "Product not found" {
		t.Fatalf("missing product want 404, got %d %s", w.Code, w.Body.String())
	}

	w, env = doJSON(t, r, http.MethodGet, "/api/users/search", nil)
	if w.Code != http.StatusBadRequest || env.Success {
		t.Fatalf("search without q want 400, got %d", w.Code)
	}
}

func TestListPaginationHugePage(t *testing.T) {
	r := setupTestRouter(t)
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		if w, _ := doJSON(t, r, http.MethodPost, "/api/categories", map[string]interface{}{"name": name}); w.Code != http.StatusCreated {
			t.Fatalf("create category want 201, got %d %s", w.Code, w.Body.String())
		}
	}

	w, env := doJSON(t, r, http.MethodGet, "/api/categories?page=2&page_size=2", nil)
	var page []models.Category
	if w.Code != http.StatusOK || json.Unmarshal(env.Data, &page) != nil || len(page) != 1 {
		t.Fatalf("second page want 1 item, got %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/categories?page=9223372036854775807&page_size=20", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"success":true,"data":[]}` {
		t.Fatalf("huge page want empty 200, got %d %s", w.Code, w.Body.String())
	}
}

func TestCategoryLifecycleOverHTTP(t *testing.T) {
	r := setupTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/categories", map[string]interface{}{"name": "Tech Gear", "sort_order": 1})
	if w.Code != http.StatusCreated {
		t.Fatalf("create category want 201, got %d %s", w.Code, w.Body.String())
	}
	var category models.Category
	_ = json.Unmarshal(env.Data, &category)
	if category.Slug != "tech-gear" || !category.IsActive {
		t.Fatalf("unexpected category %+v", category)
	}

	w, env = doJSON(t, r, http.MethodPut, "/api/categories/"+category.ID, map[string]interface{}{"name": "Gadgets"})
	if w.Code != http.StatusOK {
		t.Fatalf("update category want 200, got %d %s", w.Code, w.Body.String())
	}
	var updated models.Category
	_ = json.Unmarshal(env.Data, &updated)
	if updated.Name != "Gadgets" || updated.SortOrder != 1 || updated.Slug != "tech-gear" {
		t.Fatalf("update should only merge name, got %+v", updated)
	}

	_, env = doJSON(t, r, http.MethodGet, "/api/categories/slug/tech-gear", nil)
	if !env.Success {
		t.Fatalf("slug lookup failed: %+v", env)
	}

	w, env = doJSON(t, r, http.MethodDelete, "/api/categories/"+category.ID, nil)
	if w.Code != http.StatusOK || env.Message == "" {
		t.Fatalf("delete want 200 with message, got %d %s", w.Code, w.Body.String())
	}
	w, _ = doJSON(t, r, http.MethodGet, "/api/categories/"+category.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleted category want 404, got %d", w.Code)
	}
}

func TestConcurrentAddXP(t *testing.T) {
	r := setupTestRouter(t)

	_, env := doJSON(t, r, http.MethodPost, "/api/users", map[string]interface{}{"email": "xp@example.com", "total_xp": 100})
	var user models.User
	_ = json.Unmarshal(env.Data, &user)
	if user.TotalXP != 100 {
		t.Fatalf("seed xp want 100 got %d", user.TotalXP)
	}

	var wg sync.WaitGroup
	codes := make([]int, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w, _ := doJSON(t, r, http.MethodPost, "/api/users/"+user.ID+"/add-xp", map[string]interface{}{"xpAmount": 50})
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()
	for _, code := range codes {
		if code != http.StatusOK {
			t.Fatalf("add-xp want 200 got %v", codes)
		}
	}

	_, env = doJSON(t, r, http.MethodGet, "/api/users/"+user.ID, nil)
	var after models.User
	_ = json.Unmarshal(env.Data, &after)
	if after.TotalXP != 200 {
		t.Fatalf("total xp want 200 got %d", after.TotalXP)
	}

	w, _ := doJSON(t, r, http.MethodPost, "/api/users/"+user.ID+"/add-xp", map[string]interface{}{"xpAmount": 0})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("zero xp want 400 got %d", w.Code)
	}
	w, _ = doJSON(t, r, http.MethodPost, "/api/users/"+user.ID+"/add-xp", map[string]interface{}{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing xp want 400 got %d", w.Code)
	}
	w, _ = doJSON(t, r, http.MethodPost, "/api/users/"+uuid.NewString()+"/add-xp", map[string]interface{}{"xpAmount": 5})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown user want 404 got %d", w.Code)
	}
}

func TestAddXPUsesOwnRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache.Use(client, "test")
	t.Cleanup(func() {
		cache.Use(nil, "")
		_ = client.Close()
	})

	r := setupTestRouterWithConfig(t, func(cfg *config.Config) {
		cfg.Security.WriteRateLimit = config.RateLimitConfig{WindowSeconds: 60, MaxRequests: 100}
		cfg.Security.AddXPRateLimit = config.RateLimitConfig{WindowSeconds: 60, MaxRequests: 1}
	})

	_, env := doJSON(t, r, http.MethodPost, "/api/users", map[string]interface{}{"email": "limit@example.com"})
	var user models.User
	_ = json.Unmarshal(env.Data, &user)

	w, _ := doJSON(t, r, http.MethodPost, "/api/users/"+user.ID+"/add-xp", map[string]interface{}{"xpAmount": 5})
	if w.Code != http.StatusOK {
		t.Fatalf("first add-xp want 200 got %d", w.Code)
	}
	w, _ = doJSON(t, r, http.MethodPost, "/api/users/"+user.ID+"/add-xp", map[string]interface{}{"xpAmount": 5})
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second add-xp want 429 got %d", w.Code)
	}
	// 其他写操作只受通用写限流约束
	w, _ = doJSON(t, r, http.MethodPost, "/api/categories", map[string]interface{}{"name": "Limits"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create category want 201 got %d", w.Code)
	}
}

func TestGetUserProvisionsCaller(t *testing.T) {
	r := setupTestRouter(t)
	id := uuid.NewString()

	w, _ := doJSON(t, r, http.MethodGet, "/api/users/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("anonymous lookup want 404 got %d", w.Code)
	}

	token := signIdentityToken(t, "secret", id)
	w, env := doJSON(t, r, http.MethodGet, "/api/users/"+id, nil, "Authorization", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("self lookup want 200 got %d %s", w.Code, w.Body.String())
	}
	var user models.User
	_ = json.Unmarshal(env.Data, &user)
	if user.ID != id || user.Email != "creator@example.com" || user.Username != "creator" {
		t.Fatalf("unexpected provisioned user %+v", user)
	}
}

func TestWaitlistExportCSV(t *testing.T) {
	r := setupTestRouter(t)
	for i, source := range []string{"landing", "landing", "blog"} {
		w, _ := doJSON(t, r, http.MethodPost, "/api/waitlist", map[string]interface{}{
			"email":  fmt.Sprintf("w%d@example.com", i),
			"source": source,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("create waitlist want 201 got %d %s", w.Code, w.Body.String())
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/waitlist/export?format=csv&source=landing", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("export want 200 got %d %s", w.Code, w.Body.String())
	}
	lines := strings.Split(strings.TrimSuffix(w.Body.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv rows want 2+1 got %d: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], `"Email","Status"`) {
		t.Fatalf("unexpected header %s", lines[0])
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "waitlist-") {
		t.Fatalf("missing attachment filename: %s", w.Header().Get("Content-Disposition"))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/waitlist/export?format=pdf", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown format want 400 got %d", w.Code)
	}
}

func TestStatusRoutesReturnMessage(t *testing.T) {
	r := setupTestRouter(t)
	_, env := doJSON(t, r, http.MethodPost, "/api/users", map[string]interface{}{"email": "tx@example.com"})
	var user models.User
	_ = json.Unmarshal(env.Data, &user)

	w, env := doJSON(t, r, http.MethodPost, "/api/transactions", map[string]interface{}{"user_id": user.ID, "type": "payout", "amount": "12.50"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create transaction want 201 got %d %s", w.Code, w.Body.String())
	}
	var tx models.Transaction
	_ = json.Unmarshal(env.Data, &tx)

	w, env = doJSON(t, r, http.MethodPut, "/api/transactions/"+tx.ID+"/status", map[string]interface{}{"status": "completed"})
	if w.Code != http.StatusOK || env.Message == "" || len(env.Data) != 0 {
		t.Fatalf("status update want message only, got %d %s", w.Code, w.Body.String())
	}
	w, _ = doJSON(t, r, http.MethodPut, "/api/transactions/"+tx.ID+"/status", map[string]interface{}{"status": "exploded"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid status want 400 got %d", w.Code)
	}
}

func TestHealthAndNoRoute(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	var health map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode health failed: %v", err)
	}
	if health["success"] != true || health["version"] != "test" || health["timestamp"] == "" {
		t.Fatalf("unexpected health body %v", health)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/unknown/thing", nil))
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), `"path":"/api/unknown/thing"`) {
		t.Fatalf("no route want 404 with path, got %d %s", w.Code, w.Body.String())
	}
}
