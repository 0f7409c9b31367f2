package handlers

import (
	"github.com/go-chi/chi"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.HealthHandler)

		r.Route("/matches/{matchID}", func(r chi.Router) {
			r.Get("/games", h.ListGamesHandler)
			r.Post("/games/init", h.InitGamesHandler)
			r.Post("/games/{gameID}/result", h.SaveResultHandler)
		})
	})
}
