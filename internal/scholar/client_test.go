package scholar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestFetchSendsIdentityHeaders(t *testing.T) {
	var gotUA, gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithRateLimit(0), WithUserAgent("test-agent/1.0"))
	body, err := c.fetch(context.Background(), c.profileURL("X"))
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if body != "ok" {
		t.Errorf("body = %q, want ok", body)
	}
	if gotUA != "test-agent/1.0" {
		t.Errorf("User-Agent = %q, want test-agent/1.0", gotUA)
	}
	if gotLang != "en" {
		t.Errorf("Accept-Language = %q, want en", gotLang)
	}
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithRateLimit(0))
	_, err := c.fetch(context.Background(), c.profileURL("X"))
	if err == nil {
		t.Fatal("fetch succeeded, want status error")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error %v is not a *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429", statusErr.StatusCode)
	}
	if !errors.Is(err, ErrBadStatus) {
		t.Error("error does not match ErrBadStatus")
	}
	if !IsRetryable(err) {
		t.Error("status error should be retryable")
	}
}

func TestFetchNetworkError(t *testing.T) {
	// A closed server produces a connection failure.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithRateLimit(0))
	_, err := c.fetch(context.Background(), c.profileURL("X"))
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("error = %v, want ErrNetwork", err)
	}
	if !IsRetryable(err) {
		t.Error("network error should be retryable")
	}
}

func TestFetchWithRetryRecovers(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "flaky", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("recovered"))
	}))
	defer srv.Close()

	var warnings strings.Builder
	c := NewClient(WithBaseURL(srv.URL), WithRateLimit(0), WithRetries(3), WithWarnings(&warnings))

	body, err := c.fetchWithRetry(context.Background(), c.profileURL("X"))
	if err != nil {
		t.Fatalf("fetchWithRetry: %v", err)
	}
	if body != "recovered" {
		t.Errorf("body = %q, want recovered", body)
	}
	if calls.Load() != 3 {
		t.Errorf("got %d requests, want 3", calls.Load())
	}
	if !strings.Contains(warnings.String(), "attempt 1/3") {
		t.Errorf("expected per-attempt warnings, got: %s", warnings.String())
	}
}

func TestFetchWithRetryExhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithRateLimit(0), WithRetries(3))
	_, err := c.fetchWithRetry(context.Background(), c.profileURL("X"))
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("error = %v, want ErrExhausted", err)
	}
	if !IsFatal(err) {
		t.Error("exhausted error should be fatal")
	}
	if calls.Load() != 3 {
		t.Errorf("got %d requests, want exactly the attempt budget of 3", calls.Load())
	}
}

func TestFetchWithRetryContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(WithBaseURL(srv.URL), WithRateLimit(0), WithRetries(3))
	_, err := c.fetchWithRetry(ctx, c.profileURL("X"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

// requestTimes records server-side arrival timestamps.
type requestTimes struct {
	mu    sync.Mutex
	times []time.Time
}

func (rt *requestTimes) record() {
	rt.mu.Lock()
	rt.times = append(rt.times, time.Now())
	rt.mu.Unlock()
}

func (rt *requestTimes) gap(i, j int) time.Duration {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.times[j].Sub(rt.times[i])
}

func TestFetchPacing(t *testing.T) {
	const delay = 300 * time.Millisecond

	var rt requestTimes
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rt.record()
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithRateLimit(delay))
	ctx := context.Background()

	start := time.Now()
	if _, err := c.fetch(ctx, c.profileURL("X")); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	first := time.Since(start)
	if _, err := c.fetch(ctx, c.profileURL("X")); err != nil {
		t.Fatalf("second fetch: %v", err)
	}

	// Burst 1 means the first fetch never waits for a token.
	if first >= delay {
		t.Errorf("first fetch took %v, want under the %v delay", first, delay)
	}
	if gap := rt.gap(0, 1); gap < delay {
		t.Errorf("consecutive fetches %v apart, want at least %v", gap, delay)
	}
}

func TestFetchWithRetryBackoffSpacing(t *testing.T) {
	const delay = 50 * time.Millisecond

	var rt requestTimes
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rt.record()
		if calls.Add(1) == 1 {
			http.Error(w, "flaky", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithRateLimit(delay), WithRetries(2))
	if _, err := c.fetchWithRetry(context.Background(), c.profileURL("X")); err != nil {
		t.Fatalf("fetchWithRetry: %v", err)
	}

	// A failed attempt waits out twice the base delay before retrying.
	if gap := rt.gap(0, 1); gap < 2*delay {
		t.Errorf("retry came %v after the failure, want at least %v", gap, 2*delay)
	}
}

func TestPageURLs(t *testing.T) {
	c := NewClient(WithBaseURL("https://example.com"))

	want := "https://example.com/citations?user=AbC-123&hl=en&pagesize=100"
	if got := c.profileURL("AbC-123"); got != want {
		t.Errorf("profileURL = %q, want %q", got, want)
	}
	if got := c.pageURL("AbC-123", 200); got != want+"&cstart=200" {
		t.Errorf("pageURL = %q, want %q", got, want+"&cstart=200")
	}
}
