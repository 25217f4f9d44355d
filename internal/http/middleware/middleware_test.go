package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/yungbote/englishai-backend/internal/domain"
	"github.com/yungbote/englishai-backend/internal/platform/apierr"
	"github.com/yungbote/englishai-backend/internal/platform/ctxutil"
	"github.com/yungbote/englishai-backend/internal/platform/logger"
)

type stubAuth struct {
	userID uuid.UUID
	token  string
}

func (s stubAuth) RegisterUser(context.Context, string, string) (*types.User, error) {
	return nil, nil
}

func (s stubAuth) LoginUser(context.Context, string, string) (string, error) { return "", nil }

func (s stubAuth) GetAccessTTL() time.Duration { return time.Minute }

func (s stubAuth) SetContextFromToken(ctx context.Context, token string) (context.Context, error) {
	if token != s.token {
		return ctx, apierr.Unauthorized("Could not validate credentials")
	}
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{UserID: s.userID}), nil
}

func protectedEngine(t *testing.T, auth stubAuth) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.Use(RequestLogger(logger.Nop()))
	r.GET("/me", NewAuthMiddleware(logger.Nop(), auth).RequireAuth(), func(c *gin.Context) {
		rd := ctxutil.GetRequestData(c.Request.Context())
		c.String(http.StatusOK, rd.UserID.String())
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	id := uuid.New()
	r := protectedEngine(t, stubAuth{userID: id, token: "good"})

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"bad token", "Bearer bad", http.StatusUnauthorized},
		{"ok", "Bearer good", http.StatusOK},
		{"lowercase scheme", "bearer good", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Fatalf("status=%d want %d body=%s", rec.Code, tc.status, rec.Body.String())
			}
			if tc.status == http.StatusUnauthorized && rec.Header().Get("WWW-Authenticate") != "Bearer" {
				t.Fatalf("missing WWW-Authenticate header")
			}
			if tc.status == http.StatusOK && rec.Body.String() != id.String() {
				t.Fatalf("body=%q want %q", rec.Body.String(), id.String())
			}
		})
	}
}

func TestAttachTraceContextEchoesIDs(t *testing.T) {
	r := protectedEngine(t, stubAuth{token: "x"})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get(HeaderRequestID); got != "req-123" {
		t.Fatalf("request id=%q", got)
	}
	if rec.Header().Get(HeaderTraceID) == "" {
		t.Fatalf("trace id header missing")
	}
}
