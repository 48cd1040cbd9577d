package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minimart-systems/minimart/internal/customers"
	"github.com/minimart-systems/minimart/internal/invoices"
	"github.com/minimart-systems/minimart/internal/loans"
	"github.com/minimart-systems/minimart/internal/payments"
	"github.com/minimart-systems/minimart/internal/products"
	"github.com/minimart-systems/minimart/internal/sales"
	"github.com/minimart-systems/minimart/internal/stock"
	"github.com/minimart-systems/minimart/internal/suppliers"
	"github.com/minimart-systems/minimart/internal/summary"
	"github.com/minimart-systems/minimart/internal/testutil"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	sdb := testutil.NewDB(t)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := &Config{AppEnv: "development", RateLimitRPM: 10000}

	router := NewRouter(RouterParams{
		Config:           cfg,
		CustomersHandler: customers.NewHandler(logger, customers.NewService(customers.NewRepository(sdb))),
		SuppliersHandler: suppliers.NewHandler(logger, suppliers.NewService(suppliers.NewRepository(sdb))),
		ProductsHandler:  products.NewHandler(logger, products.NewService(products.NewRepository(sdb))),
		StockHandler:     stock.NewHandler(logger, stock.NewService(stock.NewRepository(sdb), stock.ServiceConfig{})),
		InvoicesHandler:  invoices.NewHandler(logger, invoices.NewService(invoices.NewRepository(sdb))),
		SalesHandler:     sales.NewHandler(logger, sales.NewService(sales.NewRepository(sdb), sales.ServiceConfig{})),
		LoansHandler:     loans.NewHandler(logger, loans.NewService(loans.NewRepository(sdb))),
		PaymentsHandler:  payments.NewHandler(logger, payments.NewService(payments.NewRepository(sdb), payments.ServiceConfig{})),
		SummaryHandler:   summary.NewHandler(logger, summary.NewService(sdb)),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	if resp.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&decoded)
	}
	return resp, decoded
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCustomerWithoutEmailRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/customers", map[string]any{
		"cust_id": "C010", "name": "Test User",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/customers/C010", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Test User", body["name"])
	require.Nil(t, body["email"])
}

func TestSalePropagatesOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/products", map[string]any{
		"product_id": "P001", "name": "Rice 5kg", "price": 12.5, "quantity_stock": 20,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/sales", map[string]any{
		"product_id": "P001", "quantity_sold": 3, "price_total": 37.5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/products/P001", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.EqualValues(t, 17, body["quantity_stock"])
}

func TestPaymentPropagatesOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/customers", map[string]any{"cust_id": "C001", "name": "Ben"})
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/loans", map[string]any{
		"loan_id": "L001", "cust_id": "C001", "loan_amount": 8000,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/payments", map[string]any{
		"loan_id": "L001", "amount_paid": 500,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/loans/L001", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.InDelta(t, 7500, body["balance"].(float64), 0.001)
}

func TestDeleteReferencedSupplierOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/suppliers", map[string]any{"supplier_id": "S001", "name": "Everfresh"})
	doJSON(t, http.MethodPost, srv.URL+"/products", map[string]any{
		"product_id": "P001", "name": "Rice", "supplier_id": "S001",
	})

	resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/suppliers/S001", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestValidationProblemDetail(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/customers", map[string]any{"cust_id": "C001"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.EqualValues(t, http.StatusBadRequest, body["status"])
	fields, ok := body["fields"].(map[string]any)
	require.True(t, ok, "field-level detail present")
	require.Contains(t, fields, "name")
}

func TestNotFoundProblem(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/customers/C404", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Not Found", body["title"])
}

func TestSummaryEndpoint(t *testing.T) {
	srv := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/customers", map[string]any{"cust_id": "C001", "name": "Ben"})
	doJSON(t, http.MethodPost, srv.URL+"/loans", map[string]any{
		"loan_id": "L001", "cust_id": "C001", "loan_amount": 8000,
	})

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.EqualValues(t, 1, body["totalCustomers"])
	require.EqualValues(t, 1, body["totalLoans"])
	require.InDelta(t, 8000, body["pendingPayments"].(float64), 0.001)
}
