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

// stubCounter counts in memory per key; optionally fails every call.
type stubCounter struct {
	counts map[string]int64
	err    error
}

func newStubCounter() *stubCounter {
	return &stubCounter{counts: make(map[string]int64)}
}

func (s *stubCounter) Incr(_ context.Context, key string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.counts[key]++
	return s.counts[key], nil
}

func doRequest(handler echo.HandlerFunc, mw echo.MiddlewareFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = mw(handler)(c)
	return rec
}

func TestRateLimit_DeniesAboveThreshold(t *testing.T) {
	counter := newStubCounter()
	mw := RateLimit(counter, RateLimitConfig{PerMinute: 60}, zerolog.Nop())

	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	for i := 1; i <= 60; i++ {
		rec := doRequest(ok, mw)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}

	rec := doRequest(ok, mw)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("request 61: expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Fatalf("expected zero remaining, got %q", rec.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimit_NewWindowAdmits(t *testing.T) {
	// The stub keys on whatever bucket string the middleware builds, so a
	// fresh key simulates the minute rolling over.
	counter := newStubCounter()
	mw := RateLimit(counter, RateLimitConfig{PerMinute: 1}, zerolog.Nop())

	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	if rec := doRequest(ok, mw); rec.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", rec.Code)
	}
	if rec := doRequest(ok, mw); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", rec.Code)
	}

	// Window rollover: previous counts no longer apply.
	counter.counts = map[string]int64{}
	if rec := doRequest(ok, mw); rec.Code != http.StatusOK {
		t.Fatalf("after rollover: expected 200, got %d", rec.Code)
	}
}

func TestRateLimit_BurstExtendsLimit(t *testing.T) {
	counter := newStubCounter()
	mw := RateLimit(counter, RateLimitConfig{PerMinute: 1, Burst: 2}, zerolog.Nop())

	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	for i := 1; i <= 3; i++ {
		if rec := doRequest(ok, mw); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200 within burst, got %d", i, rec.Code)
		}
	}
	if rec := doRequest(ok, mw); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 past burst, got %d", rec.Code)
	}
}

func TestRateLimit_FailsOpenOnStoreError(t *testing.T) {
	counter := newStubCounter()
	counter.err = errors.New("connection refused")
	mw := RateLimit(counter, RateLimitConfig{PerMinute: 60}, zerolog.Nop())

	called := false
	handler := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}

	rec := doRequest(handler, mw)
	if !called {
		t.Fatalf("handler not reached during cache outage")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on fail-open, got %d", rec.Code)
	}
}

func TestRateLimit_SetsObservabilityHeaders(t *testing.T) {
	counter := newStubCounter()
	mw := RateLimit(counter, RateLimitConfig{PerMinute: 60}, zerolog.Nop())

	rec := doRequest(func(c echo.Context) error { return c.NoContent(http.StatusOK) }, mw)
	if rec.Header().Get("X-RateLimit-Limit") != "60" {
		t.Fatalf("unexpected limit header %q", rec.Header().Get("X-RateLimit-Limit"))
	}
	if rec.Header().Get("X-RateLimit-Remaining") != "59" {
		t.Fatalf("unexpected remaining header %q", rec.Header().Get("X-RateLimit-Remaining"))
	}
}
