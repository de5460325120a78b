package fetcher

import (
	"context"

	"github.com/iconidentify/reelgrab/internal/domain"
)

// Fetcher retrieves video bytes from a direct media URL.
type Fetcher interface {
	// Fetch downloads the full video into memory, bounded by the
	// configured size cap. No automatic retry.
	Fetch(ctx context.Context, videoURL string) (*domain.MediaPayload, error)
}
