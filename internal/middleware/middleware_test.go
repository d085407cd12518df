package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dpang/faq-service/internal/utils"
)

const testSecret = "test-secret"

func runRequest(t *testing.T, mw echo.MiddlewareFunc, setup func(c echo.Context)) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/faqs", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}
	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "reached")
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec, c
}

func TestJWTAuthMissingToken(t *testing.T) {
	rec, _ := runRequest(t, JWTAuth(testSecret), nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	rec, _ := runRequest(t, JWTAuth(testSecret), func(c echo.Context) {
		c.Request().Header.Set("Authorization", "Bearer not-a-jwt")
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestJWTAuthValidTokenInjectsClaims(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 7, "ADMIN", 5)
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}
	rec, c := runRequest(t, JWTAuth(testSecret), func(c echo.Context) {
		c.Request().Header.Set("Authorization", "Bearer "+tok.Token)
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if role, _ := c.Get("role").(string); role != "ADMIN" {
		t.Errorf("expected role ADMIN in context, got %v", c.Get("role"))
	}
	if c.Get("user_id") == nil {
		t.Error("expected user_id in context")
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 7, "ADMIN", 5)
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}
	rec, _ := runRequest(t, JWTAuth(testSecret), func(c echo.Context) {
		c.Request().Header.Set("Authorization", "Bearer "+tok.Token)
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name     string
		role     any
		allowed  []string
		wantCode int
	}{
		{name: "admin on write tier", role: "ADMIN", allowed: []string{"ADMIN", "SUPER_ADMIN"}, wantCode: http.StatusOK},
		{name: "super admin on write tier", role: "SUPER_ADMIN", allowed: []string{"ADMIN", "SUPER_ADMIN"}, wantCode: http.StatusOK},
		{name: "user on write tier", role: "USER", allowed: []string{"ADMIN", "SUPER_ADMIN"}, wantCode: http.StatusForbidden},
		{name: "user on read tier", role: "USER", allowed: []string{"USER", "ADMIN", "SUPER_ADMIN"}, wantCode: http.StatusOK},
		{name: "missing role", role: nil, allowed: []string{"ADMIN"}, wantCode: http.StatusForbidden},
		{name: "non-string role", role: 42, allowed: []string{"ADMIN"}, wantCode: http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, _ := runRequest(t, RequireRole(tc.allowed...), func(c echo.Context) {
				if tc.role != nil {
					c.Set("role", tc.role)
				}
			})
			if rec.Code != tc.wantCode {
				t.Errorf("expected %d, got %d", tc.wantCode, rec.Code)
			}
		})
	}
}
