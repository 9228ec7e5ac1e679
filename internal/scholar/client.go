package scholar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the Google Scholar citations endpoint.
	BaseURL = "https://scholar.google.com"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the scraper to the upstream source.
	// Scholar blocks the Go default agent outright, so we always send
	// a browser-like identity unless the caller overrides it.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0"

	// DefaultDelay is the minimum spacing between consecutive page
	// fetches within one extraction.
	DefaultDelay = 2 * time.Second

	// DefaultRetries is the per-page fetch attempt budget.
	DefaultRetries = 3
)

// Client fetches citation pages with pacing and bounded retries.
// One Client keeps its own pacing state; independent extractions
// against different researchers should each use their own Client.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
	delay      time.Duration
	retries    int
	warnings   io.Writer
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithUserAgent sets the identity header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRateLimit sets the minimum delay between consecutive page
// fetches. Zero disables pacing (useful in tests). The retry backoff
// after a failed fetch is always twice this delay.
func WithRateLimit(d time.Duration) ClientOption {
	return func(c *Client) {
		c.delay = d
	}
}

// WithRetries sets the per-page fetch attempt budget.
func WithRetries(n int) ClientOption {
	return func(c *Client) {
		c.retries = n
	}
}

// WithWarnings sets the destination for non-fatal pipeline warnings.
func WithWarnings(w io.Writer) ClientOption {
	return func(c *Client) {
		c.warnings = w
	}
}

// NewClient creates a citation page client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    BaseURL,
		userAgent:  DefaultUserAgent,
		delay:      DefaultDelay,
		retries:    DefaultRetries,
		warnings:   io.Discard,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Burst 1 lets the first fetch proceed immediately; every later
	// fetch waits out the configured delay.
	limit := rate.Inf
	if c.delay > 0 {
		limit = rate.Every(c.delay)
	}
	c.limiter = rate.NewLimiter(limit, 1)

	return c
}

// warnf emits a non-fatal pipeline warning. Warnings are observability
// only and never change control flow.
func (c *Client) warnf(format string, args ...any) {
	fmt.Fprintf(c.warnings, "warning: "+format+"\n", args...)
}

// profileURL returns the first citation page for a researcher.
func (c *Client) profileURL(id string) string {
	return fmt.Sprintf("%s/citations?user=%s&hl=en&pagesize=%d", c.baseURL, url.QueryEscape(id), PageSize)
}

// pageURL returns a citation page at the given zero-based row offset.
func (c *Client) pageURL(id string, start int) string {
	return c.profileURL(id) + "&cstart=" + strconv.Itoa(start)
}

// fetch performs a single paced request. A non-2xx status is returned
// as a *StatusError rather than a body so the retry loop can classify
// it; transport failures wrap ErrNetwork.
func (c *Client) fetch(ctx context.Context, pageURL string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "en")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return "", &StatusError{StatusCode: resp.StatusCode, URL: pageURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", ErrNetwork, err)
	}
	return string(body), nil
}

// fetchWithRetry fetches a page, absorbing retryable failures up to the
// attempt budget. Every failed attempt waits twice the base delay
// before the next try; the delay does not grow between attempts (the
// pacing limiter still applies on top, so a retried page pays both
// waits). When the budget is spent the last failure is wrapped in
// ErrExhausted and the extraction aborts.
func (c *Client) fetchWithRetry(ctx context.Context, pageURL string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		body, err := c.fetch(ctx, pageURL)
		if err == nil {
			return body, nil
		}
		if !IsRetryable(err) {
			return "", err
		}
		lastErr = err
		c.warnf("fetch attempt %d/%d failed: %v", attempt, c.retries, err)

		if attempt == c.retries {
			break
		}
		backoff := 2 * c.delay
		if backoff > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}
	}
	return "", fmt.Errorf("%w after %d attempts: %v", ErrExhausted, c.retries, lastErr)
}
