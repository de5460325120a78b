package resolver

import (
	"context"

	"github.com/iconidentify/reelgrab/internal/domain"
)

// Resolver turns a reel URL into a direct video location via the
// upstream metadata API.
type Resolver interface {
	// Resolve returns the upstream metadata for a reel URL. The caller
	// is responsible for checking VideoInfo.Valid.
	Resolve(ctx context.Context, reelURL string) (*domain.VideoInfo, error)
}
