package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/iconidentify/reelgrab/internal/api/handler"
	mw "github.com/iconidentify/reelgrab/internal/api/middleware"
)

// NewRouter creates the HTTP router with all routes configured.
func NewRouter(
	downloadHandler *handler.DownloadHandler,
	healthHandler *handler.HealthHandler,
	devMode bool,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CleanPath)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Logger)
	r.Use(mw.Recovery(devMode))
	r.Use(middleware.Timeout(2 * time.Minute))
	r.Use(mw.CORS)

	// Health endpoints
	r.Get("/health", healthHandler.Healthy)
	r.Get("/ready", healthHandler.Ready)
	r.Get("/stats", healthHandler.Stats)

	// Download pipeline
	r.Get("/download", downloadHandler.Download)
	r.Get("/info", downloadHandler.Info)

	return r
}
