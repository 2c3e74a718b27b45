package expenses

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/paruise-shop/paruise/internal/shared"
)

type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req RecordExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	expense, err := h.service.Record(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			shared.WriteError(w, http.StatusBadRequest, "Date must be DD/MM/YYYY")
			return
		}
		h.logger.Error("record expense failed", slog.Any("error", err))
		shared.WriteError(w, http.StatusBadGateway, shared.UserSafeMessage(err))
		return
	}

	h.logger.Info("expense recorded",
		slog.String("category", expense.Category),
		slog.Float64("amount", expense.Amount))
	shared.WriteJSON(w, http.StatusCreated, expense)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	shared.WriteJSON(w, http.StatusOK, map[string]any{"categories": Categories})
}
