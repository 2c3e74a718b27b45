package sales

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

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

// Quote handles GET /sales/quote?unit_price=&unit_cost=&quantity=.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	unitPrice, err := strconv.ParseFloat(q.Get("unit_price"), 64)
	if err != nil {
		shared.WriteError(w, http.StatusBadRequest, "unit_price is required")
		return
	}
	unitCost, _ := strconv.ParseFloat(q.Get("unit_cost"), 64)
	quantity, err := strconv.Atoi(q.Get("quantity"))
	if err != nil {
		quantity = MinQuantity
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		shared.WriteError(w, http.StatusBadRequest, "quantity must be between 1 and 20")
		return
	}

	shared.WriteJSON(w, http.StatusOK, h.service.Quote(unitPrice, unitCost, quantity))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req RecordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Record(r.Context(), req)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.WriteError(w, http.StatusNotFound, "Unknown product")
			return
		}
		h.logger.Error("record sale failed", slog.Any("error", err))
		shared.WriteError(w, http.StatusBadGateway, shared.UserSafeMessage(err))
		return
	}

	shared.WriteJSON(w, http.StatusCreated, result)
}
