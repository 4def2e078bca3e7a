package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/admin-nexus/internal/config"
	"github.com/admin-nexus/internal/http/handlers/shared"
	"github.com/admin-nexus/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("http://localhost:3000", []string{"http://localhost:3000/"}, false)
	if got != "http://localhost:3000" {
		t.Fatalf("allow-list should ignore trailing slash, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORSMiddleware(config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}, AllowCredentials: true}))
	r.GET("/api/users", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/users", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status want 204 got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Fatalf("unexpected allow origin %q", w.Header().Get("Access-Control-Allow-Origin"))
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatalf("credentials header missing")
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if strings.TrimSpace(w2.Header().Get(requestIDHeader)) == "" {
		t.Fatalf("generated request id should not be empty")
	}
}

func signIdentityToken(t *testing.T, secret, subject string) string {
	t.Helper()
	claims := service.IdentityClaims{
		Email: "creator@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token failed: %v", err)
	}
	return token
}

func TestIdentityMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	identities := service.NewIdentityService(config.AuthConfig{JWTSecret: "secret"})

	r := gin.New()
	r.Use(IdentityMiddleware(identities))
	r.GET("/whoami", func(c *gin.Context) {
		identity := shared.GetIdentity(c)
		if identity == nil {
			c.JSON(http.StatusOK, gin.H{"user_id": ""})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID})
	})

	cases := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
		wantError  string
	}{
		{name: "anonymous", header: "", wantStatus: http.StatusOK, wantUser: ""},
		{name: "valid", header: "Bearer " + signIdentityToken(t, "secret", "user-1"), wantStatus: http.StatusOK, wantUser: "user-1"},
		{name: "wrong secret", header: "Bearer " + signIdentityToken(t, "other", "user-1"), wantStatus: http.StatusUnauthorized, wantError: "Invalid or expired token"},
		{name: "malformed header", header: "Token abc", wantStatus: http.StatusUnauthorized, wantError: "Invalid authorization header"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)
			if w.Code != tc.wantStatus {
				t.Fatalf("status want %d got %d body=%s", tc.wantStatus, w.Code, w.Body.String())
			}
			if tc.wantStatus != http.StatusOK {
				want := `{"success":false,"error":"` + tc.wantError + `"}`
				if w.Body.String() != want {
					t.Fatalf("error envelope want %s got %s", want, w.Body.String())
				}
				return
			}
			var resp map[string]string
			_ = json.Unmarshal(w.Body.Bytes(), &resp)
			if resp["user_id"] != tc.wantUser {
				t.Fatalf("user want %q got %q", tc.wantUser, resp["user_id"])
			}
		})
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, production := range []bool{false, true} {
		r := gin.New()
		r.Use(RecoveryMiddleware(production))
		r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status want 500 got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response failed: %v", err)
		}
		_, hasStack := resp["stack"]
		if hasStack == production {
			t.Fatalf("production=%v stack present=%v", production, hasStack)
		}
		if resp["success"] != false {
			t.Fatalf("success should be false, got %v", resp["success"])
		}
	}
}

func TestNotFoundHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.NoRoute(NotFoundHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nothing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status want 404 got %d", w.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["path"] != "/api/nothing" || resp["success"] != false || resp["error"] == "" {
		t.Fatalf("unexpected body %v", resp)
	}
}
