package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/paruise-shop/paruise/internal/catalog"
	"github.com/paruise-shop/paruise/internal/customers"
	"github.com/paruise-shop/paruise/internal/expenses"
	"github.com/paruise-shop/paruise/internal/ledger"
	"github.com/paruise-shop/paruise/internal/marketing"
	"github.com/paruise-shop/paruise/internal/observability"
	"github.com/paruise-shop/paruise/internal/sales"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	CatalogHandler   *catalog.Handler
	CustomersHandler *customers.Handler
	SalesHandler     *sales.Handler
	ExpensesHandler  *expenses.Handler
	LedgerHandler    *ledger.Handler
	MarketingHandler *marketing.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())

	r.Route("/api", func(api chi.Router) {
		params.CatalogHandler.MountRoutes(api)
		params.CustomersHandler.MountRoutes(api)
		params.SalesHandler.MountRoutes(api)
		params.ExpensesHandler.MountRoutes(api)
		params.LedgerHandler.MountRoutes(api)
		params.MarketingHandler.MountRoutes(api)
	})

	return r
}
