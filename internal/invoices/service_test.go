package invoices

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minimart-systems/minimart/internal/platform/httpx"
	"github.com/minimart-systems/minimart/internal/testutil"
)

func TestInvoiceLifecycle(t *testing.T) {
	sdb := testutil.NewDB(t)
	svc := NewService(NewRepository(sdb))
	ctx := context.Background()
	testutil.Exec(t, sdb, `INSERT INTO customers (cust_id, name) VALUES ('C001', 'Asha')`)

	inv, err := svc.Create(ctx, CreateInvoiceRequest{CustID: "C001", TotalAmt: 62.5})
	require.NoError(t, err)
	require.NotEmpty(t, inv.ID, "id assigned when omitted")
	require.NotEmpty(t, inv.Date, "date defaults to today")

	got, err := svc.Get(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, 62.5, got.TotalAmt)

	total := 70.0
	updated, err := svc.Update(ctx, inv.ID, UpdateInvoiceRequest{TotalAmt: &total})
	require.NoError(t, err)
	require.Equal(t, 70.0, updated.TotalAmt)
	require.Equal(t, "C001", updated.CustID)

	require.NoError(t, svc.Delete(ctx, inv.ID))
	_, err = svc.Get(ctx, inv.ID)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestInvoiceUnknownCustomer(t *testing.T) {
	svc := NewService(NewRepository(testutil.NewDB(t)))

	_, err := svc.Create(context.Background(), CreateInvoiceRequest{CustID: "C404"})
	require.ErrorIs(t, err, httpx.ErrIntegrity)
}

func TestDeleteInvoiceReferencedBySale(t *testing.T) {
	sdb := testutil.NewDB(t)
	svc := NewService(NewRepository(sdb))
	ctx := context.Background()
	testutil.Exec(t, sdb, `INSERT INTO customers (cust_id, name) VALUES ('C001', 'Asha')`)
	testutil.Exec(t, sdb, `INSERT INTO products (product_id, name) VALUES ('P001', 'Rice')`)

	inv, err := svc.Create(ctx, CreateInvoiceRequest{CustID: "C001"})
	require.NoError(t, err)
	testutil.Exec(t, sdb,
		`INSERT INTO sales (sales_id, product_id, invoice_id, quantity_sold, price_total, sale_date)
		 VALUES ('SA001', 'P001', ?, 1, 12.5, '2024-03-10')`, inv.ID)

	require.ErrorIs(t, svc.Delete(ctx, inv.ID), httpx.ErrIntegrity)
}
