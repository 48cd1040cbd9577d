package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/minimart-systems/minimart/internal/customers"
	"github.com/minimart-systems/minimart/internal/invoices"
	"github.com/minimart-systems/minimart/internal/loans"
	"github.com/minimart-systems/minimart/internal/payments"
	"github.com/minimart-systems/minimart/internal/products"
	"github.com/minimart-systems/minimart/internal/sales"
	"github.com/minimart-systems/minimart/internal/stock"
	"github.com/minimart-systems/minimart/internal/suppliers"
	"github.com/minimart-systems/minimart/internal/summary"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Config *Config

	CustomersHandler *customers.Handler
	SuppliersHandler *suppliers.Handler
	ProductsHandler  *products.Handler
	StockHandler     *stock.Handler
	InvoicesHandler  *invoices.Handler
	SalesHandler     *sales.Handler
	LoansHandler     *loans.Handler
	PaymentsHandler  *payments.Handler
	SummaryHandler   *summary.Handler
}

// NewRouter constructs the chi.Router with one resource root per entity.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(params.Config) {
		r.Use(mw)
	}
	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/customers", params.CustomersHandler.MountRoutes)
	r.Route("/suppliers", params.SuppliersHandler.MountRoutes)
	r.Route("/products", params.ProductsHandler.MountRoutes)
	r.Route("/stock", params.StockHandler.MountRoutes)
	r.Route("/invoices", params.InvoicesHandler.MountRoutes)
	r.Route("/sales", params.SalesHandler.MountRoutes)
	r.Route("/loans", params.LoansHandler.MountRoutes)
	r.Route("/payments", params.PaymentsHandler.MountRoutes)
	r.Get("/summary", params.SummaryHandler.Get)

	return r
}
