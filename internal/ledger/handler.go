package ledger

import (
	"log/slog"
	"net/http"

	"github.com/paruise-shop/paruise/internal/chart"
	"github.com/paruise-shop/paruise/internal/shared"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	series := h.service.Series(r.Context())
	shared.WriteJSON(w, http.StatusOK, series)
}

// Chart serves the cumulative balance as an SVG area chart. Labels carry the
// day and month only; the year would not fit under the axis.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	series := h.service.Series(r.Context())
	if len(series.Points) == 0 {
		shared.WriteError(w, http.StatusNotFound, shared.UserSafeMessage(shared.ErrNoData))
		return
	}

	values := make([]float64, len(series.Points))
	labels := make([]string, len(series.Points))
	for i, p := range series.Points {
		values[i] = p.Balance
		labels[i] = p.Date[:5]
	}

	svg, err := chart.Area(0, 0, values, labels, chart.Opts{
		Title:       "Trésorerie",
		Description: "Solde cumulé, ventes moins dépenses",
	})
	if err != nil {
		h.logger.Error("render cash-flow chart", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(svg))
}
