package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitBlocksAfterWindowBudget(t *testing.T) {
	h := RateLimit(10, 15*time.Minute)(okHandler())

	for i := 1; i <= 10; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = "10.0.0.1:4444"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("attempt %d: status = %d, want 200", i, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.RemoteAddr = "10.0.0.1:4444"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("attempt 11: status = %d, want 429", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "too many requests") {
		t.Errorf("attempt 11: body = %q, want throttling message", body)
	}
}

func TestRateLimitIsPerClient(t *testing.T) {
	h := RateLimit(1, 15*time.Minute)(okHandler())

	first := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	first.RemoteAddr = "10.0.0.1:4444"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("first client: status = %d, want 200", rec.Code)
	}

	// The first client's budget is spent; a different client is unaffected.
	second := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	second.RemoteAddr = "10.0.0.2:4444"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, second)
	if rec.Code != http.StatusOK {
		t.Fatalf("second client: status = %d, want 200", rec.Code)
	}

	again := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	again.RemoteAddr = "10.0.0.1:4444"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, again)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("first client again: status = %d, want 429", rec.Code)
	}
}
