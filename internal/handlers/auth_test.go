package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uiforge/uiforge-backend/internal/types"
)

type fakeAuthService struct {
	registerErr error
	loginErr    error
	lastUser    *types.User
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, user *types.User) (string, string, error) {
	f.lastUser = user
	if f.registerErr != nil {
		return "", "", f.registerErr
	}
	return "access-123", "refresh-123", nil
}

func (f *fakeAuthService) LoginUser(ctx context.Context, email, password string) (string, string, error) {
	if f.loginErr != nil {
		return "", "", f.loginErr
	}
	return "access-123", "refresh-123", nil
}

func (f *fakeAuthService) RefreshUser(ctx context.Context) (string, string, error) {
	return "access-456", "refresh-456", nil
}

func (f *fakeAuthService) LogoutUser(ctx context.Context) error { return nil }

func (f *fakeAuthService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	return ctx, nil
}

func (f *fakeAuthService) GetAccessTTL() time.Duration { return time.Hour }

func newAuthHandlerRouter(svc *fakeAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/refresh", h.Refresh)
	r.POST("/api/auth/logout", h.Logout)
	return r
}

func TestRegister_ReturnsTokenPair(t *testing.T) {
	svc := &fakeAuthService{}
	r := newAuthHandlerRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email": "jane@example.com", "password": "secret", "firstName": "Jane", "lastName": "Doe"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["access_token"] != "access-123" || body["refresh_token"] != "refresh-123" {
		t.Fatalf("unexpected tokens: %v", body)
	}
	if body["expires_in"] != float64(3600) {
		t.Fatalf("unexpected expires_in: %v", body["expires_in"])
	}
	if svc.lastUser == nil || svc.lastUser.Email != "jane@example.com" {
		t.Fatalf("service did not receive user fields: %+v", svc.lastUser)
	}
}

func TestRegister_ServiceErrorIs400(t *testing.T) {
	svc := &fakeAuthService{registerErr: errors.New("email is already in use")}
	r := newAuthHandlerRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email": "jane@example.com", "password": "secret", "firstName": "Jane", "lastName": "Doe"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "already in use") {
		t.Fatalf("expected error message in body, got %s", rec.Body.String())
	}
}

func TestLogin_BadCredentialsIs401(t *testing.T) {
	svc := &fakeAuthService{loginErr: errors.New("invalid email or password")}
	r := newAuthHandlerRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email": "jane@example.com", "password": "wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusUnauthorized)
	}
}

func TestLogin_MalformedBodyIs400(t *testing.T) {
	r := newAuthHandlerRouter(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email": `))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusBadRequest)
	}
}

func TestRefreshAndLogout(t *testing.T) {
	r := newAuthHandlerRouter(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh: unexpected status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "access-456") {
		t.Fatalf("refresh: missing new access token: %s", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout: unexpected status %d", rec.Code)
	}
}
