package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"postforge-backend/internal/handlers"
	"postforge-backend/internal/middleware"
	"postforge-backend/internal/websocket"
)

func New(
	sessionHandler *handlers.SessionHandler,
	wsHub *websocket.Hub,
	corsAllowedOrigins string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(corsAllowedOrigins))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Prometheus metrics
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Session Routes ────
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.Create)

			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", sessionHandler.Get)
				r.Post("/generate", sessionHandler.Generate)
				r.Get("/history", sessionHandler.History)

				r.Route("/runs/{runID}", func(r chi.Router) {
					r.Get("/", sessionHandler.GetRun)
					r.Get("/posts/{index}/download", sessionHandler.DownloadPost)
					r.Get("/posts/{index}/preview", sessionHandler.PreviewPost)
				})
			})
		})

		// ──── WebSocket ────
		r.Get("/ws", wsHub.HandleWebSocket)
	})

	return r
}
