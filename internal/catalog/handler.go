package catalog

import (
	"encoding/json"
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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	products := h.service.List(r.Context())
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"products":   products,
		"count":      len(products),
		"categories": Categories,
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req AddProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.service.Add(r.Context(), req)
	if err != nil {
		h.logger.Error("add product failed", slog.Any("error", err))
		shared.WriteError(w, http.StatusBadGateway, shared.UserSafeMessage(err))
		return
	}

	h.logger.Info("product added", slog.String("name", product.Name), slog.String("category", product.Category))
	shared.WriteJSON(w, http.StatusCreated, product)
}

func (h *Handler) LowStock(w http.ResponseWriter, r *http.Request) {
	low := h.service.LowStock(r.Context())
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"products":  low,
		"count":     len(low),
		"threshold": LowStockThreshold,
	})
}
