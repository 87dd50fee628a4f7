package middleware

import (
	"encoding/json"
	"micro_learning_backend/internal/config"
	"micro_learning_backend/internal/model"
	"micro_learning_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func testRouter(cfg *config.Config) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)
	hits := 0
	router := gin.New()
	router.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		hits++
		claims := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
	})
	return router, &hits
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "middleware-test-secret", ExpireTime: time.Hour},
	}
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	router, hits := testRouter(testConfig())

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if *hits != 0 {
		t.Fatal("handler ran without a token")
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("expected error message in body")
	}
}

func TestAuthMiddlewareMalformedToken(t *testing.T) {
	router, hits := testRouter(testConfig())

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if *hits != 0 {
		t.Fatal("handler ran with a malformed token")
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	cfg := testConfig()
	router, hits := testRouter(cfg)

	user := &model.User{Email: "ada@x.com"}
	user.ID = 42
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if *hits != 0 {
		t.Fatal("handler ran with an expired token")
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	cfg := testConfig()
	router, hits := testRouter(cfg)

	user := &model.User{Email: "ada@x.com"}
	user.ID = 42
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if *hits != 1 {
		t.Fatalf("expected handler to run once, ran %d times", *hits)
	}

	var body map[string]uint
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["userId"] != 42 {
		t.Fatalf("expected claims user id 42, got %d", body["userId"])
	}
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	router, hits := testRouter(testConfig())

	user := &model.User{Email: "ada@x.com"}
	user.ID = 42
	token, err := util.GenerateJWT(user, "a-different-secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if *hits != 0 {
		t.Fatal("handler ran with a forged token")
	}
}
