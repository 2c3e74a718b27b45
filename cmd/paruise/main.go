package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/paruise-shop/paruise/internal/app"
	"github.com/paruise-shop/paruise/internal/catalog"
	"github.com/paruise-shop/paruise/internal/customers"
	"github.com/paruise-shop/paruise/internal/expenses"
	"github.com/paruise-shop/paruise/internal/ledger"
	"github.com/paruise-shop/paruise/internal/marketing"
	"github.com/paruise-shop/paruise/internal/observability"
	"github.com/paruise-shop/paruise/internal/sales"
	"github.com/paruise-shop/paruise/internal/sheetdb"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	client, err := sheetdb.NewClient(ctx, cfg.SpreadsheetID, cfg.CredentialsFile)
	if err != nil {
		logger.Error("connect sheets", slog.Any("error", err))
		os.Exit(1)
	}
	if err := client.Ping(ctx); err != nil {
		logger.Error("ping spreadsheet", slog.Any("error", err))
		os.Exit(1)
	}

	metrics := observability.NewMetrics()
	store := metrics.WrapStore(client)

	catalogRepo := catalog.NewRepository(store)
	catalogService := catalog.NewService(catalogRepo, logger)
	catalogHandler := catalog.NewHandler(logger, catalogService)

	customersRepo := customers.NewRepository(store)
	customersService := customers.NewService(customersRepo, logger)
	customersHandler := customers.NewHandler(logger, customersService)

	salesRepo := sales.NewRepository(store)
	salesService := sales.NewService(salesRepo, catalogRepo, customersRepo, cfg.ShopName, logger)
	salesHandler := sales.NewHandler(logger, salesService)

	expensesRepo := expenses.NewRepository(store)
	expensesService := expenses.NewService(expensesRepo)
	expensesHandler := expenses.NewHandler(logger, expensesService)

	ledgerRepo := ledger.NewRepository(store)
	ledgerService := ledger.NewService(ledgerRepo)
	ledgerHandler := ledger.NewHandler(logger, ledgerService)

	marketingService := marketing.NewService(cfg.ShopName, cfg.ShopPhone)
	marketingHandler := marketing.NewHandler(logger, marketingService)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		CatalogHandler:   catalogHandler,
		CustomersHandler: customersHandler,
		SalesHandler:     salesHandler,
		ExpensesHandler:  expensesHandler,
		LedgerHandler:    ledgerHandler,
		MarketingHandler: marketingHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
