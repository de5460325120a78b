package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/iconidentify/reelgrab/internal/domain"
)

// writeAttachment writes the fetched video as a file download with
// the headers the client needs: content type and length from the
// upstream payload, attachment disposition, range support hint, and
// a one-hour caching hint.
func writeAttachment(w http.ResponseWriter, payload *domain.MediaPayload, filename string) {
	w.Header().Set("Content-Type", payload.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(payload.ContentLength, 10))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Accept-Ranges", "bytes")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(payload.Data)
}

// fallbackFilename generates a download name when the upstream
// metadata did not suggest one.
func fallbackFilename() string {
	return "reel-" + uuid.New().String()[:8] + ".mp4"
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
