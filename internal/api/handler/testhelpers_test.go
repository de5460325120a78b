package handler

import (
	"context"
	"io"
	"log/slog"

	"github.com/iconidentify/reelgrab/internal/domain"
	"github.com/iconidentify/reelgrab/internal/service"
)

// testLogger returns a silent logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockResolver is a test implementation of resolver.Resolver.
type mockResolver struct {
	info  *domain.VideoInfo
	err   error
	calls int
}

func (m *mockResolver) Resolve(ctx context.Context, reelURL string) (*domain.VideoInfo, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.info, nil
}

// mockFetcher is a test implementation of fetcher.Fetcher.
type mockFetcher struct {
	payload *domain.MediaPayload
	err     error
	calls   int
}

func (m *mockFetcher) Fetch(ctx context.Context, videoURL string) (*domain.MediaPayload, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.payload, nil
}

func newTestHandler(res *mockResolver, f *mockFetcher) *DownloadHandler {
	svc := service.NewDownloadService(res, f, testLogger())
	return NewDownloadHandler(svc, testLogger())
}

func validInfo() *domain.VideoInfo {
	return &domain.VideoInfo{
		Status: "success",
		Data: &domain.VideoData{
			VideoURL: "https://cdn.example.com/v.mp4",
			Filename: "v.mp4",
		},
	}
}

func videoPayload(data string) *domain.MediaPayload {
	return &domain.MediaPayload{
		Data:          []byte(data),
		ContentType:   "video/mp4",
		ContentLength: int64(len(data)),
	}
}
