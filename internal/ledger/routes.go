package ledger

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/ledger", h.Get)
	r.Get("/ledger/chart.svg", h.Chart)
}
