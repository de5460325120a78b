package service

import (
	"context"
	"log/slog"

	"github.com/iconidentify/reelgrab/internal/domain"
	"github.com/iconidentify/reelgrab/internal/fetcher"
	"github.com/iconidentify/reelgrab/internal/resolver"
)

// DownloadService runs the resolve-fetch pipeline for a reel URL.
// Each stage short-circuits with a tagged domain error; the HTTP
// boundary maps those to status codes.
type DownloadService struct {
	resolver resolver.Resolver
	fetcher  fetcher.Fetcher
	logger   *slog.Logger
}

// NewDownloadService creates the pipeline service.
func NewDownloadService(res resolver.Resolver, f fetcher.Fetcher, logger *slog.Logger) *DownloadService {
	return &DownloadService{
		resolver: res,
		fetcher:  f,
		logger:   logger,
	}
}

// Resolve validates the reel URL and returns its video metadata.
func (s *DownloadService) Resolve(ctx context.Context, reelURL string) (*domain.VideoInfo, error) {
	if reelURL == "" {
		return nil, domain.NewError(domain.KindValidation, "URL parameter is required", domain.ErrMissingURL)
	}
	if !domain.ValidReelURL(reelURL) {
		return nil, domain.NewError(domain.KindValidation, "Invalid Instagram reel URL format", domain.ErrInvalidReelURL)
	}

	info, err := s.resolver.Resolve(ctx, reelURL)
	if err != nil {
		s.logger.Error("resolution failed", "url", reelURL, "error", err)
		return nil, err
	}

	if !info.Valid() {
		s.logger.Error("resolution returned no video URL", "url", reelURL, "status", info.Status)
		return nil, domain.NewError(domain.KindResolution, "upstream did not return a video URL", nil)
	}

	return info, nil
}

// Download resolves the reel URL and fetches its video bytes.
func (s *DownloadService) Download(ctx context.Context, reelURL string) (*domain.VideoInfo, *domain.MediaPayload, error) {
	info, err := s.Resolve(ctx, reelURL)
	if err != nil {
		return nil, nil, err
	}

	payload, err := s.fetcher.Fetch(ctx, info.Data.VideoURL)
	if err != nil {
		s.logger.Error("fetch failed", "url", info.Data.VideoURL, "error", err)
		return nil, nil, err
	}

	if !payload.IsVideo() {
		s.logger.Error("fetched payload is not video",
			"url", info.Data.VideoURL,
			"content_type", payload.ContentType,
		)
		return nil, nil, domain.NewError(domain.KindFetch, "invalid video content type", domain.ErrNotVideo)
	}

	return info, payload, nil
}
