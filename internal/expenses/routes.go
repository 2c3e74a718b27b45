package expenses

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/expenses", h.Create)
	r.Get("/expenses/categories", h.ListCategories)
}
