package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"invoicedash/internal/config"
	"invoicedash/internal/currency"
	invoicedashHttp "invoicedash/internal/http"
	customerHandler "invoicedash/internal/http/customer"
	dashboardHandler "invoicedash/internal/http/dashboard"
	invoiceHandler "invoicedash/internal/http/invoice"
	"invoicedash/internal/mutation"
	"invoicedash/internal/query"
	"invoicedash/internal/records/store"
	"invoicedash/internal/seed"
	"invoicedash/internal/viewcache"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	format, err := currency.NewFormatter(cfg.Currency.Locale, cfg.Currency.Symbol)
	if err != nil {
		slog.Error("failed to build currency formatter", "error", err)
		os.Exit(1)
	}

	var (
		recordStore = store.New(seed.Demo())
		cache       = viewcache.New()
	)

	var (
		queryService    = query.NewService(recordStore, format, cfg.Query.Delay)
		mutationService = mutation.NewService(recordStore, invoicedashHttp.NewCacheNotifier(cache))
	)

	var (
		dashboardH = dashboardHandler.NewHandler(queryService)
		invoiceH   = invoiceHandler.NewHandler(queryService, mutationService, cache)
		customerH  = customerHandler.NewHandler(queryService)
	)

	router := invoicedashHttp.New(cfg.HTTP.AllowedOrigins, dashboardH, invoiceH, customerH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
