package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/verifica-mx/campaign-verifier/internal/config"
)

func signedCookie(t *testing.T, claims jwt.MapClaims) *http.Cookie {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	value, err := token.SignedString([]byte(config.Envs.JWTSecret))
	if err != nil {
		t.Fatal(err)
	}
	return &http.Cookie{Name: "token", Value: value}
}

func TestSessionFromRequestWithValidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(signedCookie(t, jwt.MapClaims{
		"userId":   "user-1",
		"username": "jane",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}))

	session, ok := SessionFromRequest(req)
	if !ok {
		t.Fatal("expected a session")
	}
	if session.UserID != "user-1" || session.Username != "jane" {
		t.Errorf("unexpected session %+v", session)
	}
}

func TestSessionFromRequestWithoutCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := SessionFromRequest(req); ok {
		t.Fatal("expected no session without a cookie")
	}
}

func TestSessionFromRequestRejectsBadSignature(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"userId": "user-1"})
	value, err := token.SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: value})

	if _, ok := SessionFromRequest(req); ok {
		t.Fatal("expected forged token to be rejected")
	}
}

func TestSessionFromRequestRejectsExpiredToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(signedCookie(t, jwt.MapClaims{
		"userId": "user-1",
		"exp":    time.Now().Add(-time.Hour).Unix(),
	}))

	if _, ok := SessionFromRequest(req); ok {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestAuthMiddlewareBlocksAnonymousRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a session")
	})

	rec := httptest.NewRecorder()
	AuthMiddleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddlewarePropagatesSessionOwner(t *testing.T) {
	var gotUserID any
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Context().Value(UserIDKey)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(signedCookie(t, jwt.MapClaims{
		"userId": "user-1",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}))

	rec := httptest.NewRecorder()
	AuthMiddleware(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotUserID != "user-1" {
		t.Errorf("context user id = %v, want user-1", gotUserID)
	}
}
