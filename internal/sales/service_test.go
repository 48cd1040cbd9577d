package sales

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minimart-systems/minimart/internal/platform/httpx"
	"github.com/minimart-systems/minimart/internal/testutil"
)

func setup(t *testing.T, cfg ServiceConfig) (*Service, *sql.DB) {
	sdb := testutil.NewDB(t)
	testutil.Exec(t, sdb,
		`INSERT INTO products (product_id, name, price, quantity_stock) VALUES ('P001', 'Rice 5kg', 12.5, 20)`)
	return NewService(NewRepository(sdb), cfg), sdb
}

func productStock(t *testing.T, sdb *sql.DB, id string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, sdb.QueryRow(`SELECT quantity_stock FROM products WHERE product_id = ?`, id).Scan(&n))
	return n
}

func TestSaleDecrementsStock(t *testing.T) {
	svc, sdb := setup(t, ServiceConfig{})
	ctx := context.Background()

	sale, err := svc.Create(ctx, CreateSaleRequest{ProductID: "P001", QuantitySold: 3, PriceTotal: 37.5})
	require.NoError(t, err)
	require.NotEmpty(t, sale.ID)
	require.Nil(t, sale.InvoiceID, "invoice reference is optional")

	require.EqualValues(t, 17, productStock(t, sdb, "P001"))
}

func TestOversellRejectedAndRolledBack(t *testing.T) {
	svc, sdb := setup(t, ServiceConfig{})

	_, err := svc.Create(context.Background(), CreateSaleRequest{ProductID: "P001", QuantitySold: 25})
	require.ErrorIs(t, err, httpx.ErrValidation)

	// Neither half persisted.
	var n int
	require.NoError(t, sdb.QueryRow(`SELECT COUNT(1) FROM sales`).Scan(&n))
	require.Zero(t, n)
	require.EqualValues(t, 20, productStock(t, sdb, "P001"))
}

func TestOversellAllowedWhenConfigured(t *testing.T) {
	svc, sdb := setup(t, ServiceConfig{AllowNegativeStock: true})

	_, err := svc.Create(context.Background(), CreateSaleRequest{ProductID: "P001", QuantitySold: 25})
	require.NoError(t, err)
	require.EqualValues(t, -5, productStock(t, sdb, "P001"))
}

func TestStockAccountingAcrossInterleavedWrites(t *testing.T) {
	svc, sdb := setup(t, ServiceConfig{})
	ctx := context.Background()

	// Interleave receipts (raw inserts via the same relative-update SQL the
	// stock package issues) and sales; the final total must equal
	// initial + receipts - sales regardless of order.
	receipt := func(qty int64) {
		testutil.Exec(t, sdb, `UPDATE products SET quantity_stock = quantity_stock + ? WHERE product_id = 'P001'`, qty)
	}
	sell := func(qty int64) {
		_, err := svc.Create(ctx, CreateSaleRequest{ProductID: "P001", QuantitySold: qty})
		require.NoError(t, err)
	}

	sell(4)
	receipt(10)
	sell(7)
	receipt(2)
	sell(1)

	require.EqualValues(t, 20+10+2-4-7-1, productStock(t, sdb, "P001"))
}

func TestDeleteSaleRestoresStock(t *testing.T) {
	svc, sdb := setup(t, ServiceConfig{})
	ctx := context.Background()

	sale, err := svc.Create(ctx, CreateSaleRequest{ProductID: "P001", QuantitySold: 3})
	require.NoError(t, err)
	require.EqualValues(t, 17, productStock(t, sdb, "P001"))

	require.NoError(t, svc.Delete(ctx, sale.ID))
	require.EqualValues(t, 20, productStock(t, sdb, "P001"))

	_, err = svc.Get(ctx, sale.ID)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestSaleQuantityImmutable(t *testing.T) {
	svc, _ := setup(t, ServiceConfig{})
	ctx := context.Background()

	sale, err := svc.Create(ctx, CreateSaleRequest{ProductID: "P001", QuantitySold: 3})
	require.NoError(t, err)

	qty := int64(1)
	_, err = svc.Update(ctx, sale.ID, UpdateSaleRequest{QuantitySold: &qty})
	require.ErrorIs(t, err, httpx.ErrValidation)

	price := 40.0
	updated, err := svc.Update(ctx, sale.ID, UpdateSaleRequest{PriceTotal: &price})
	require.NoError(t, err)
	require.Equal(t, 40.0, updated.PriceTotal)
	require.EqualValues(t, 3, updated.QuantitySold)
}

func TestSaleWithInvoice(t *testing.T) {
	svc, sdb := setup(t, ServiceConfig{})
	ctx := context.Background()
	testutil.Exec(t, sdb, `INSERT INTO customers (cust_id, name) VALUES ('C001', 'Asha')`)
	testutil.Exec(t, sdb,
		`INSERT INTO invoices (invoice_id, cust_id, invoice_date, total_amt) VALUES ('IN001', 'C001', '2024-03-10', 62.5)`)

	inv := "IN001"
	sale, err := svc.Create(ctx, CreateSaleRequest{ProductID: "P001", InvoiceID: &inv, QuantitySold: 2})
	require.NoError(t, err)
	require.NotNil(t, sale.InvoiceID)

	ghost := "IN404"
	_, err = svc.Create(ctx, CreateSaleRequest{ProductID: "P001", InvoiceID: &ghost, QuantitySold: 2})
	require.ErrorIs(t, err, httpx.ErrIntegrity)
}
