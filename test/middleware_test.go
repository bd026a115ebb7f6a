package main

import (
	"net/http/httptest"
	"testing"
	"time"

	"app/config"
	"app/middleware"
	"app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Helper to create an app with the JWT middleware guarding a probe route
func makeGuardedApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.JWTMiddleware)
	app.Get("/test", func(c *fiber.Ctx) error {
		claims, err := middleware.ExtractClaims(c)
		if err != nil {
			return c.Status(500).SendString(err.Error())
		}
		return c.Status(200).SendString(claims.UserID)
	})
	return app
}

func signTestToken(t *testing.T, secret string) string {
	t.Helper()
	claims := models.JwtClaims{
		UserID: "ops@example.com",
		Role:   "operator",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	app := makeGuardedApp()
	req := httptest.NewRequest("GET", "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401 without Authorization header, got %d", resp.StatusCode)
	}
}

func TestJWTMiddleware_MalformedHeader(t *testing.T) {
	app := makeGuardedApp()
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Token abc.def.ghi")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401 for non-Bearer scheme, got %d", resp.StatusCode)
	}
}

func TestJWTMiddleware_WrongSecret(t *testing.T) {
	prev := config.AppConfig
	config.AppConfig = config.Config{JWTSecret: "right-secret"}
	defer func() { config.AppConfig = prev }()

	app := makeGuardedApp()
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "wrong-secret"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401 for token signed with wrong secret, got %d", resp.StatusCode)
	}
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	prev := config.AppConfig
	config.AppConfig = config.Config{JWTSecret: "right-secret"}
	defer func() { config.AppConfig = prev }()

	app := makeGuardedApp()
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "right-secret"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 for valid token, got %d", resp.StatusCode)
	}
}
