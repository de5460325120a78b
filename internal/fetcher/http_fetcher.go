package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/iconidentify/reelgrab/internal/config"
	"github.com/iconidentify/reelgrab/internal/domain"
)

// HTTPFetcher implements Fetcher using plain HTTP requests.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
	logger    *slog.Logger
}

// New creates an HTTP-based media fetcher.
func New(cfg config.FetchConfig, logger *slog.Logger) *HTTPFetcher {
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = domain.MaxPayloadBytes
	}

	return &HTTPFetcher{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		userAgent: cfg.UserAgent,
		maxBytes:  maxBytes,
		logger:    logger,
	}
}

// Fetch downloads the video bytes and the response headers needed
// downstream. Transport failures and oversized payloads come back as
// fetch errors.
func (f *HTTPFetcher) Fetch(ctx context.Context, videoURL string) (*domain.MediaPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, videoURL, nil)
	if err != nil {
		return nil, domain.NewError(domain.KindFetch, "create media request", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Range", "bytes=0-")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, domain.NewError(domain.KindFetch, "media request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return nil, domain.NewError(domain.KindFetch,
			fmt.Sprintf("media host returned status %d", resp.StatusCode), nil)
	}

	// Reject early when the host declares an oversized payload, and
	// again after reading in case the declaration was missing or wrong.
	if resp.ContentLength > f.maxBytes {
		return nil, domain.NewError(domain.KindFetch, "video exceeds size limit", domain.ErrPayloadTooLarge)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, domain.NewError(domain.KindFetch, "read media body", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, domain.NewError(domain.KindFetch, "video exceeds size limit", domain.ErrPayloadTooLarge)
	}

	contentType := resp.Header.Get("Content-Type")

	f.logger.Info("media fetched",
		"url", videoURL,
		"size", humanize.Bytes(uint64(len(data))),
		"content_type", contentType,
	)

	return &domain.MediaPayload{
		Data:          data,
		ContentType:   contentType,
		ContentLength: int64(len(data)),
	}, nil
}
