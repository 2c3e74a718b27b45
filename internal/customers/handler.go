package customers

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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	customers := h.service.List(r.Context())
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"customers": customers,
		"count":     len(customers),
		"sources":   Sources,
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req RegisterCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := h.service.Register(r.Context(), req)
	if err != nil {
		h.logger.Error("register customer failed", slog.Any("error", err))
		shared.WriteError(w, http.StatusBadGateway, shared.UserSafeMessage(err))
		return
	}

	h.logger.Info("customer registered", slog.String("name", customer.Name), slog.String("source", customer.Source))
	shared.WriteJSON(w, http.StatusCreated, customer)
}

func (h *Handler) Top(w http.ResponseWriter, r *http.Request) {
	podium := h.service.TopSpenders(r.Context())
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"top":   podium,
		"count": len(podium),
	})
}

func (h *Handler) Campaign(w http.ResponseWriter, r *http.Request) {
	var req CampaignMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Campaign(r.Context(), req)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.WriteError(w, http.StatusNotFound, shared.UserSafeMessage(shared.ErrNotFound))
			return
		}
		h.logger.Error("campaign message failed", slog.Any("error", err))
		shared.WriteError(w, http.StatusBadGateway, shared.UserSafeMessage(err))
		return
	}

	shared.WriteJSON(w, http.StatusOK, result)
}
