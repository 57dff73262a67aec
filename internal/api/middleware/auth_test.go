package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/artisan-works/commission-system/internal/core/domain"
	"github.com/artisan-works/commission-system/internal/core/ports"
)

type fakeRevoker struct {
	revoked map[string]bool
	err     error
}

func (r *fakeRevoker) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	if r.revoked == nil {
		r.revoked = make(map[string]bool)
	}
	r.revoked[tokenID] = true
	return r.err
}

func (r *fakeRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return r.revoked[tokenID], r.err
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func sessionClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"user_id":     "u1",
		"email":       "ana@example.com",
		"roles":       []string{"buyer", "artist"},
		"active_role": "buyer",
		"jti":         "jti-1",
		"exp":         time.Now().Add(time.Hour).Unix(),
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	signed := signToken(t, "secret", sessionClaims())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth("secret", &fakeRevoker{})(func(c echo.Context) error {
		called = true
		session, ok := c.Get(SessionKey).(ports.Session)
		if !ok {
			t.Fatal("session not set on context")
		}
		if session.UserID != "u1" || session.TokenID != "jti-1" {
			t.Fatalf("session fields wrong: %+v", session)
		}
		if session.ActiveRole != domain.RoleBuyer {
			t.Fatalf("active role = %s", session.ActiveRole)
		}
		if len(session.Roles) != 2 {
			t.Fatalf("roles = %v", session.Roles)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("next not called")
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", &fakeRevoker{})(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	e := echo.New()
	signed := signToken(t, "other-secret", sessionClaims())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", &fakeRevoker{})(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthMiddleware_RevokedToken(t *testing.T) {
	e := echo.New()
	signed := signToken(t, "secret", sessionClaims())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	revoker := &fakeRevoker{revoked: map[string]bool{"jti-1": true}}
	handler := Auth("secret", revoker)(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked token, got %v", err)
	}
}

func TestAuthMiddleware_ActiveRoleOutsideRoles(t *testing.T) {
	e := echo.New()
	claims := sessionClaims()
	claims["roles"] = []string{"buyer"}
	claims["active_role"] = "artist"
	signed := signToken(t, "secret", claims)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", &fakeRevoker{})(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for tampered active role, got %v", err)
	}
}
