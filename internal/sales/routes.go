package sales

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/sales/quote", h.Quote)
	r.Post("/sales", h.Create)
}
