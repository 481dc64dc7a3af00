package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"fintrack/internal/auth"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAuthenticator struct {
	id    auth.Identity
	err   error
	calls int
}

func (f *fakeAuthenticator) Verify(_ context.Context, header string) (auth.Identity, error) {
	f.calls++
	if f.err != nil {
		return auth.Identity{}, f.err
	}
	if header != "Bearer good" {
		return auth.Identity{}, apperrors.WithMessage(apperrors.ErrUnauthenticated, "Not authorized, token failed")
	}
	return f.id, nil
}

type fakeLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (f *fakeLimiter) Allow(_ context.Context, key string) (bool, error) {
	f.keys = append(f.keys, key)
	return f.allow, f.err
}

func doRequest(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func TestRequireAuth(t *testing.T) {
	verifier := &fakeAuthenticator{id: auth.Identity{UserID: "u1", Email: "a@example.com"}}
	handlerCalls := 0

	r := gin.New()
	r.Use(RequireAuth(verifier))
	r.GET("/me", func(c *gin.Context) {
		handlerCalls++
		id, err := CurrentIdentity(c)
		if err != nil {
			RespondError(c, err)
			return
		}
		fromCtx, _ := auth.FromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"id": id.UserID, "ctx_id": fromCtx.UserID})
	})

	t.Run("valid_token", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/me", "", map[string]string{"Authorization": "Bearer good"})
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := parseBody(t, rec)
		if body["id"] != "u1" || body["ctx_id"] != "u1" {
			t.Errorf("identity not propagated: %v", body)
		}
	})

	t.Run("rejected_before_handler", func(t *testing.T) {
		before := handlerCalls
		rec := doRequest(r, http.MethodGet, "/me", "", map[string]string{"Authorization": "Bearer bad"})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		body := parseBody(t, rec)
		if body["code"] != "UNAUTHENTICATED" || body["message"] != "Not authorized, token failed" {
			t.Errorf("unexpected body %v", body)
		}
		if handlerCalls != before {
			t.Error("handler ran for a rejected request")
		}
	})

	t.Run("lookup_failure_is_internal", func(t *testing.T) {
		failing := &fakeAuthenticator{err: apperrors.Wrap(apperrors.ErrInternalServer, errors.New("db down"))}
		r := gin.New()
		r.Use(RequireAuth(failing))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		rec := doRequest(r, http.MethodGet, "/x", "", map[string]string{"Authorization": "Bearer good"})
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "db down") {
			t.Error("internal detail leaked")
		}
	})
}

func TestCurrentIdentityMissing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if _, err := CurrentIdentity(c); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) { _ = c.Error(apperrors.ErrRecordNotFound) })
	r.GET("/raw", func(c *gin.Context) { _ = c.Error(errors.New("pq: relation does not exist")) })

	rec := doRequest(r, http.MethodGet, "/app", "", nil)
	if rec.Code != http.StatusNotFound || parseBody(t, rec)["code"] != "RECORD_NOT_FOUND" {
		t.Errorf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(r, http.MethodGet, "/raw", "", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := parseBody(t, rec); body["message"] != apperrors.ErrInternalServer.Message {
		t.Errorf("expected generic message, got %v", body)
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	rec := doRequest(r, http.MethodGet, "/panic", "", nil)
	if rec.Code != http.StatusInternalServerError || parseBody(t, rec)["code"] != "INTERNAL_ERROR" {
		t.Errorf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRequestLogging(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := doRequest(r, http.MethodGet, "/ping", "", nil)
	if !uuid.IsValid(rec.Header().Get("X-Request-ID")) {
		t.Errorf("expected generated request id, got %q", rec.Header().Get("X-Request-ID"))
	}

	const incoming = "0190a5b4-2222-7000-8000-000000000002"
	rec = doRequest(r, http.MethodGet, "/ping", "", map[string]string{"X-Request-ID": incoming})
	if got := rec.Header().Get("X-Request-ID"); got != incoming {
		t.Errorf("expected incoming request id to be kept, got %q", got)
	}

	rec = doRequest(r, http.MethodGet, "/ping", "", map[string]string{"X-Request-ID": "<script>"})
	if got := rec.Header().Get("X-Request-ID"); got == "<script>" {
		t.Error("invalid request id must be replaced")
	}
}

func TestLoginRateLimit(t *testing.T) {
	newRouter := func(l Limiter) *gin.Engine {
		r := gin.New()
		r.POST("/login", LoginRateLimit(l), func(c *gin.Context) {
			var req struct {
				Email string `json:"email"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.Status(http.StatusBadRequest)
				return
			}
			c.JSON(http.StatusOK, gin.H{"email": req.Email})
		})
		return r
	}

	t.Run("allowed_keeps_body", func(t *testing.T) {
		l := &fakeLimiter{allow: true}
		rec := doRequest(newRouter(l), http.MethodPost, "/login", `{"email":"Alice@Example.com"}`, nil)
		if rec.Code != http.StatusOK || parseBody(t, rec)["email"] != "Alice@Example.com" {
			t.Fatalf("unexpected response %d: %s", rec.Code, rec.Body.String())
		}
		if len(l.keys) != 1 || l.keys[0] != "email:alice@example.com" {
			t.Errorf("unexpected limiter keys %v", l.keys)
		}
	})

	t.Run("limited", func(t *testing.T) {
		rec := doRequest(newRouter(&fakeLimiter{allow: false}), http.MethodPost, "/login", `{"email":"a@b.c"}`, nil)
		if rec.Code != http.StatusTooManyRequests || parseBody(t, rec)["code"] != "TOO_MANY_REQUESTS" {
			t.Errorf("unexpected response %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("falls_back_to_ip", func(t *testing.T) {
		l := &fakeLimiter{allow: true}
		doRequest(newRouter(l), http.MethodPost, "/login", `not json`, nil)
		if len(l.keys) != 1 || !strings.HasPrefix(l.keys[0], "ip:") {
			t.Errorf("expected ip key, got %v", l.keys)
		}
	})

	t.Run("fails_open", func(t *testing.T) {
		rec := doRequest(newRouter(&fakeLimiter{err: errors.New("redis down")}), http.MethodPost, "/login", `{"email":"a@b.c"}`, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200 when limiter errors, got %d", rec.Code)
		}
	})

	t.Run("nil_limiter", func(t *testing.T) {
		rec := doRequest(newRouter(nil), http.MethodPost, "/login", `{"email":"a@b.c"}`, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})
}
