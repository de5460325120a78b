package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/iconidentify/reelgrab/internal/config"
	"github.com/iconidentify/reelgrab/internal/domain"
)

// maxMetadataBytes bounds how much of the upstream response is read.
// Metadata payloads are small; anything larger is garbage.
const maxMetadataBytes = 1 << 20

// HTTPResolver resolves reel URLs against the upstream metadata API.
type HTTPResolver struct {
	baseURL    string
	userAgent  string
	policy     RetryPolicy
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a resolver for the configured metadata API.
func New(cfg config.ResolverConfig, logger *slog.Logger) *HTTPResolver {
	policy := DefaultRetryPolicy()
	if cfg.MaxAttempts > 0 {
		policy.MaxAttempts = cfg.MaxAttempts
	}
	if cfg.RetryDelay > 0 {
		policy.Delay = cfg.RetryDelay
	}

	return &HTTPResolver{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		policy:    policy,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// SetPolicy overrides the retry policy. Tests use it to inject a fake
// sleep function.
func (r *HTTPResolver) SetPolicy(p RetryPolicy) {
	r.policy = p
}

// Resolve calls the metadata API with the reel URL and validates the
// response shape. All failures come back as resolution errors; raw
// transport errors never escape.
func (r *HTTPResolver) Resolve(ctx context.Context, reelURL string) (*domain.VideoInfo, error) {
	endpoint := r.baseURL + "?url=" + url.QueryEscape(reelURL)

	resp, err := r.getWithRetry(ctx, endpoint)
	if err != nil {
		return nil, domain.NewError(domain.KindResolution, "metadata request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMetadataBytes))
	if err != nil {
		return nil, domain.NewError(domain.KindResolution, "read metadata response", err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.Error("metadata API error",
			"url", reelURL,
			"status", resp.StatusCode,
			"body", truncate(body, 512),
		)
		return nil, domain.NewError(domain.KindResolution,
			fmt.Sprintf("metadata API returned status %d", resp.StatusCode), nil)
	}

	// The upstream occasionally serves an HTML error page with a 200.
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "text/html") {
		r.logger.Error("metadata API returned HTML",
			"url", reelURL,
			"body", truncate(body, 512),
		)
		return nil, domain.NewError(domain.KindResolution, "metadata API returned an HTML page", domain.ErrHTMLResponse)
	}

	var info domain.VideoInfo
	if err := json.Unmarshal(body, &info); err != nil {
		r.logger.Error("metadata response is not JSON",
			"url", reelURL,
			"error", err,
			"body", truncate(body, 512),
		)
		return nil, domain.NewError(domain.KindResolution, "malformed metadata response", domain.ErrMalformedMetadata)
	}

	return &info, nil
}

// getWithRetry issues the metadata GET, retrying transport failures
// and retryable status codes with a fixed delay between attempts.
func (r *HTTPResolver) getWithRetry(ctx context.Context, endpoint string) (*http.Response, error) {
	var lastErr error

	for attempt := 1; attempt <= r.policy.MaxAttempts; attempt++ {
		if attempt > 1 {
			r.logger.Info("retrying metadata request", "attempt", attempt)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", r.userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := r.httpClient.Do(req)
		if err == nil && !r.policy.RetryStatus(resp.StatusCode) {
			return resp, nil
		}

		if err != nil {
			lastErr = err
		} else {
			io.Copy(io.Discard, io.LimitReader(resp.Body, maxMetadataBytes))
			resp.Body.Close()
			lastErr = fmt.Errorf("upstream status %d", resp.StatusCode)
		}

		if attempt == r.policy.MaxAttempts {
			break
		}

		if err := r.policy.Sleep(ctx, r.policy.Delay); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", r.policy.MaxAttempts, lastErr)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
