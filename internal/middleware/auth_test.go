package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/uiforge/uiforge-backend/internal/logger"
	"github.com/uiforge/uiforge-backend/internal/requestdata"
	"github.com/uiforge/uiforge-backend/internal/types"
)

type fakeAuthService struct {
	validToken string
	userID     uuid.UUID
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, user *types.User) (string, string, error) {
	return "", "", nil
}

func (f *fakeAuthService) LoginUser(ctx context.Context, email, password string) (string, string, error) {
	return "", "", nil
}

func (f *fakeAuthService) RefreshUser(ctx context.Context) (string, string, error) {
	return "", "", nil
}

func (f *fakeAuthService) LogoutUser(ctx context.Context) error { return nil }

func (f *fakeAuthService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString != f.validToken {
		return ctx, errors.New("invalid or expired token")
	}
	return requestdata.WithRequestData(ctx, &requestdata.RequestData{
		TokenString: tokenString,
		UserID:      f.userID,
	}), nil
}

func (f *fakeAuthService) GetAccessTTL() time.Duration { return time.Hour }

func newAuthTestRouter(svc *fakeAuthService) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)
	am := NewAuthMiddleware(logger.NewNop(), svc)
	hits := 0
	r := gin.New()
	protected := r.Group("/")
	protected.Use(am.RequireAuth())
	protected.GET("/protected", func(c *gin.Context) {
		hits++
		rd := requestdata.GetRequestData(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": rd.UserID.String()})
	})
	return r, &hits
}

func TestRequireAuth_MissingTokenIs401(t *testing.T) {
	r, hits := newAuthTestRouter(&fakeAuthService{validToken: "good", userID: uuid.New()})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusUnauthorized)
	}
	if *hits != 0 {
		t.Fatalf("handler ran without a token")
	}
}

func TestRequireAuth_TamperedTokenIs401(t *testing.T) {
	r, hits := newAuthTestRouter(&fakeAuthService{validToken: "good", userID: uuid.New()})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer tampered")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusUnauthorized)
	}
	if *hits != 0 {
		t.Fatalf("handler ran with a tampered token")
	}
}

func TestRequireAuth_ValidTokenPassesIdentityThrough(t *testing.T) {
	userID := uuid.New()
	r, hits := newAuthTestRouter(&fakeAuthService{validToken: "good", userID: userID})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if *hits != 1 {
		t.Fatalf("expected handler to run once, got %d", *hits)
	}
}

func TestRequireAuth_QueryTokenAccepted(t *testing.T) {
	r, _ := newAuthTestRouter(&fakeAuthService{validToken: "good", userID: uuid.New()})

	req := httptest.NewRequest(http.MethodGet, "/protected?token=good", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
}

func TestRequireAuth_NilIdentityIs403(t *testing.T) {
	r, hits := newAuthTestRouter(&fakeAuthService{validToken: "good", userID: uuid.Nil})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusForbidden)
	}
	if *hits != 0 {
		t.Fatalf("handler ran without a resolved user id")
	}
}
