package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubAllower struct {
	ok      bool
	err     error
	lastKey string
}

func (a *stubAllower) Allow(_ context.Context, key string) (bool, error) {
	a.lastKey = key
	return a.ok, a.err
}

func runRateLimit(t *testing.T, limiter Allower, next echo.HandlerFunc) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/users/signup", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return RateLimit(limiter, zerolog.Nop())(next)(c)
}

func TestRateLimit_AllowsWithinLimit(t *testing.T) {
	called := false
	err := runRateLimit(t, &stubAllower{ok: true}, func(c echo.Context) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if !called {
		t.Error("handler must run when the limiter allows")
	}
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	err := runRateLimit(t, &stubAllower{ok: false}, func(c echo.Context) error {
		t.Fatal("handler must not run when the limit is exceeded")
		return nil
	})

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", he.Code)
	}
}

func TestRateLimit_FailsOpenOnStoreError(t *testing.T) {
	called := false
	err := runRateLimit(t, &stubAllower{err: errors.New("redis down")}, func(c echo.Context) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if !called {
		t.Error("a broken limiter store must not block requests")
	}
}

func TestRateLimit_KeysByClientIP(t *testing.T) {
	limiter := &stubAllower{ok: true}
	if err := runRateLimit(t, limiter, func(c echo.Context) error { return nil }); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if limiter.lastKey == "" {
		t.Error("limiter must be keyed by the client address")
	}
}
