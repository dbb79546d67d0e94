package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/domain"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

func newTestApp(tm *TokenManager) *fiber.App {
	app := fiber.New()
	// minimal error translation so DomainError status codes reach the client
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).SendString(domainErr.Code)
		}
		return nil
	})

	m := NewMiddleware(tm)
	app.Get("/whoami", m.Handle, RequireIdentity(), func(c *fiber.Ctx) error {
		identity, _ := IdentityFromContext(c)
		return c.SendString(identity.UserID + "|" + string(identity.Role))
	})
	return app
}

func TestMiddlewareValidToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	app := newTestApp(tm)

	token, err := tm.Issue("user1-id", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "user1-id|USER" {
		t.Fatalf("unexpected identity binding: %s", body)
	}
}

func TestMiddlewareMissingHeader(t *testing.T) {
	app := newTestApp(NewTokenManager("test-secret", 60))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for missing header, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "AUTHENTICATION_REQUIRED" {
		t.Fatalf("missing header must be a no-identity rejection, got %s", body)
	}
}

func TestMiddlewareRejectsBadTokens(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	app := newTestApp(tm)

	foreign, err := NewTokenManager("other-secret", 60).Issue("user1-id", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"non-bearer scheme", "Token abc"},
		{"bare value", "Bearer"},
		{"garbage token", "Bearer not-a-jwt"},
		{"foreign key", "Bearer " + foreign},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", tc.header)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: request: %v", tc.name, err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, resp.StatusCode)
		}
		body, _ := io.ReadAll(resp.Body)
		if string(body) != "INVALID_TOKEN" {
			t.Fatalf("%s: expected invalid-token rejection, got %s", tc.name, body)
		}
	}
}

func TestIdentityFromContextAbsent(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if _, ok := IdentityFromContext(c); ok {
			t.Fatalf("expected no identity on unauthenticated request")
		}
		return c.SendStatus(http.StatusOK)
	})
	if _, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil)); err != nil {
		t.Fatalf("request: %v", err)
	}
}
