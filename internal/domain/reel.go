package domain

import (
	"regexp"
	"strings"
)

// MaxPayloadBytes is the largest video the service will proxy (100 MiB).
const MaxPayloadBytes int64 = 100 << 20

// reelURLPattern matches Instagram reel URLs. The ID segment is the
// base64url-style shortcode; a trailing slash and tracking query
// parameters are tolerated.
var reelURLPattern = regexp.MustCompile(`^https://(www\.)?instagram\.com/reel/[A-Za-z0-9_-]+/?(\?.*)?$`)

// ValidReelURL reports whether raw is an Instagram reel URL the
// service accepts. It is a pure predicate: no normalization, no
// network access.
func ValidReelURL(raw string) bool {
	return reelURLPattern.MatchString(raw)
}

// VideoInfo is the metadata API's resolution result for a reel.
type VideoInfo struct {
	Status string     `json:"status"`
	Data   *VideoData `json:"data,omitempty"`
}

// VideoData carries the direct media location for a resolved reel.
type VideoData struct {
	VideoURL string `json:"videoUrl"`
	Filename string `json:"filename"`
}

// Valid reports whether resolution actually produced a fetchable video
// URL. The upstream signals success via Status; a success status with
// an empty video URL is still unusable.
func (v *VideoInfo) Valid() bool {
	return v != nil && v.Status == "success" && v.Data != nil && v.Data.VideoURL != ""
}

// MediaPayload holds fetched video bytes plus the upstream response
// headers the outbound response needs.
type MediaPayload struct {
	Data          []byte
	ContentType   string
	ContentLength int64
}

// IsVideo reports whether the payload's content type indicates video
// media.
func (p *MediaPayload) IsVideo() bool {
	return strings.HasPrefix(p.ContentType, "video/")
}
