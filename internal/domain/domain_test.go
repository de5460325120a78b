package domain

import (
	"errors"
	"testing"
)

func TestValidReelURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"plain reel", "https://instagram.com/reel/ABC123", true},
		{"www reel", "https://www.instagram.com/reel/ABC123", true},
		{"trailing slash", "https://www.instagram.com/reel/ABC123/", true},
		{"tracking query", "https://www.instagram.com/reel/ABC123/?igsh=xyz", true},
		{"underscore and hyphen id", "https://www.instagram.com/reel/a_b-C9", true},
		{"empty", "", false},
		{"not a url", "hello world", false},
		{"http scheme", "http://www.instagram.com/reel/ABC123", false},
		{"wrong host", "https://www.example.com/reel/ABC123", false},
		{"wrong path", "https://www.instagram.com/not-a-reel/x", false},
		{"post path", "https://www.instagram.com/p/ABC123", false},
		{"extra path segment", "https://www.instagram.com/reel/ABC123/extra", false},
		{"invalid id chars", "https://www.instagram.com/reel/abc$123", false},
		{"empty id", "https://www.instagram.com/reel/", false},
		{"subdomain host", "https://evil.instagram.com/reel/ABC123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidReelURL(tt.url); got != tt.want {
				t.Errorf("ValidReelURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestVideoInfo_Valid(t *testing.T) {
	tests := []struct {
		name string
		info *VideoInfo
		want bool
	}{
		{"nil", nil, false},
		{"empty", &VideoInfo{}, false},
		{"success without data", &VideoInfo{Status: "success"}, false},
		{"success with empty video url", &VideoInfo{Status: "success", Data: &VideoData{}}, false},
		{"non-success status", &VideoInfo{Status: "error", Data: &VideoData{VideoURL: "https://x/v.mp4"}}, false},
		{"valid", &VideoInfo{Status: "success", Data: &VideoData{VideoURL: "https://x/v.mp4", Filename: "v.mp4"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMediaPayload_IsVideo(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"video/mp4", true},
		{"video/webm", true},
		{"text/plain", false},
		{"text/html; charset=utf-8", false},
		{"application/octet-stream", false},
		{"", false},
	}

	for _, tt := range tests {
		p := &MediaPayload{ContentType: tt.contentType}
		if got := p.IsVideo(); got != tt.want {
			t.Errorf("IsVideo() with %q = %v, want %v", tt.contentType, got, tt.want)
		}
	}
}

func TestError_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewError(KindResolution, "metadata request failed", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	var derr *Error
	if !errors.As(err, &derr) {
		t.Fatal("errors.As should match *Error")
	}
	if derr.Kind != KindResolution {
		t.Errorf("kind = %d, want KindResolution", derr.Kind)
	}

	want := "metadata request failed: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestError_NoCause(t *testing.T) {
	err := NewError(KindFetch, "media host returned status 404", nil)

	if err.Error() != "media host returned status 404" {
		t.Errorf("Error() = %q", err.Error())
	}
	if errors.Unwrap(err) != nil {
		t.Error("Unwrap should return nil when there is no cause")
	}
}
