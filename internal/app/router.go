package app

import (
	"github.com/avc-dev/link-shortener/internal/handler"
	"github.com/avc-dev/link-shortener/internal/middleware"
	"github.com/avc-dev/link-shortener/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, authService *service.AuthService, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.GzipMiddleware(logger))

	auth := middleware.NewAuthMiddleware(authService, logger)

	r.Get("/ping", h.Ping)
	r.Get("/{id}", h.GetURL)

	// Создание ссылок: владелец определяется по куке, при её отсутствии выдаётся новая
	r.Group(func(r chi.Router) {
		r.Use(auth.Authenticate)
		r.Post("/", h.CreateURL)
		r.Post("/api/shorten", h.CreateURLJSON)
		r.Post("/api/shorten/batch", h.CreateURLBatch)
	})

	r.Route("/api/urls", func(r chi.Router) {
		r.Get("/", h.GetPublicURLs)
		r.Get("/{id}", h.GetURLInfo)
		r.Get("/{id}/visit", h.VisitURL)
	})

	r.Get("/api/stats", h.GetStats)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Get("/api/user/urls", h.GetUserURLs)
		r.Delete("/api/user/urls", h.DeleteURLs)
		r.Get("/api/user/stats", h.GetUserStats)
	})

	return r
}
