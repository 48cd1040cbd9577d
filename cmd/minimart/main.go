package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minimart-systems/minimart/internal/app"
	"github.com/minimart-systems/minimart/internal/customers"
	"github.com/minimart-systems/minimart/internal/invoices"
	"github.com/minimart-systems/minimart/internal/loans"
	"github.com/minimart-systems/minimart/internal/payments"
	"github.com/minimart-systems/minimart/internal/platform/db"
	"github.com/minimart-systems/minimart/internal/products"
	"github.com/minimart-systems/minimart/internal/sales"
	"github.com/minimart-systems/minimart/internal/stock"
	"github.com/minimart-systems/minimart/internal/suppliers"
	"github.com/minimart-systems/minimart/internal/summary"
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

	sdb, err := db.Open(cfg.SQLitePath)
	if err != nil {
		logger.Error("open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer sdb.Close()

	if err := db.Migrate(ctx, sdb); err != nil {
		logger.Error("migrate schema", slog.Any("error", err))
		os.Exit(1)
	}
	if cfg.SeedDemo {
		if err := db.Seed(ctx, sdb); err != nil {
			logger.Error("seed demo data", slog.Any("error", err))
			os.Exit(1)
		}
	}

	customersHandler := customers.NewHandler(logger, customers.NewService(customers.NewRepository(sdb)))
	suppliersHandler := suppliers.NewHandler(logger, suppliers.NewService(suppliers.NewRepository(sdb)))
	productsHandler := products.NewHandler(logger, products.NewService(products.NewRepository(sdb)))
	stockHandler := stock.NewHandler(logger, stock.NewService(stock.NewRepository(sdb),
		stock.ServiceConfig{AllowNegativeStock: cfg.AllowNegativeStock}))
	invoicesHandler := invoices.NewHandler(logger, invoices.NewService(invoices.NewRepository(sdb)))
	salesHandler := sales.NewHandler(logger, sales.NewService(sales.NewRepository(sdb),
		sales.ServiceConfig{AllowNegativeStock: cfg.AllowNegativeStock}))
	loansHandler := loans.NewHandler(logger, loans.NewService(loans.NewRepository(sdb)))
	paymentsHandler := payments.NewHandler(logger, payments.NewService(payments.NewRepository(sdb),
		payments.ServiceConfig{AllowOverpayment: cfg.AllowOverpayment}))
	summaryHandler := summary.NewHandler(logger, summary.NewService(sdb))

	router := app.NewRouter(app.RouterParams{
		Config:           cfg,
		CustomersHandler: customersHandler,
		SuppliersHandler: suppliersHandler,
		ProductsHandler:  productsHandler,
		StockHandler:     stockHandler,
		InvoicesHandler:  invoicesHandler,
		SalesHandler:     salesHandler,
		LoansHandler:     loansHandler,
		PaymentsHandler:  paymentsHandler,
		SummaryHandler:   summaryHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("minimart listening", slog.String("addr", cfg.AppAddr), slog.String("db", cfg.SQLitePath))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", slog.Any("error", err))
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", slog.Any("error", err))
		}
	}
}
