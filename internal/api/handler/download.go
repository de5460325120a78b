package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/iconidentify/reelgrab/internal/domain"
	"github.com/iconidentify/reelgrab/internal/service"
)

// DownloadHandler handles the reel download endpoints.
type DownloadHandler struct {
	svc    *service.DownloadService
	logger *slog.Logger
}

// NewDownloadHandler creates a new download handler.
func NewDownloadHandler(svc *service.DownloadService, logger *slog.Logger) *DownloadHandler {
	return &DownloadHandler{
		svc:    svc,
		logger: logger,
	}
}

// Download handles GET /download?url=
func (h *DownloadHandler) Download(w http.ResponseWriter, r *http.Request) {
	reelURL := r.URL.Query().Get("url")

	info, payload, err := h.svc.Download(r.Context(), reelURL)
	if err != nil {
		h.writePipelineError(w, err)
		return
	}

	filename := info.Data.Filename
	if filename == "" {
		filename = fallbackFilename()
	}

	writeAttachment(w, payload, filename)

	h.logger.Info("reel served",
		"url", reelURL,
		"filename", filename,
		"size", humanize.Bytes(uint64(payload.ContentLength)),
	)
}

// Info handles GET /info?url= — resolve-only, no media fetch.
func (h *DownloadHandler) Info(w http.ResponseWriter, r *http.Request) {
	reelURL := r.URL.Query().Get("url")

	info, err := h.svc.Resolve(r.Context(), reelURL)
	if err != nil {
		h.writePipelineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// writePipelineError maps each error kind to exactly one status code
// and message shape, independent of how the failure was signaled
// internally.
func (h *DownloadHandler) writePipelineError(w http.ResponseWriter, err error) {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		h.logger.Error("unexpected pipeline error", "error", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	switch derr.Kind {
	case domain.KindValidation:
		writeError(w, http.StatusBadRequest, derr.Message)
	case domain.KindResolution:
		writeError(w, http.StatusBadRequest, "Failed to get video URL from API")
	case domain.KindFetch:
		if errors.Is(derr, domain.ErrNotVideo) {
			writeError(w, http.StatusBadRequest, "Invalid video content type")
		} else {
			writeError(w, http.StatusBadRequest, "Failed to download video")
		}
	default:
		h.logger.Error("unexpected pipeline error", "error", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
	}
}
