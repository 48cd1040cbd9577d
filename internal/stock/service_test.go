package stock

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
	testutil.Exec(t, sdb, `INSERT INTO suppliers (supplier_id, name) VALUES ('S001', 'Everfresh')`)
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

func TestReceiptIncrementsStock(t *testing.T) {
	svc, sdb := setup(t, ServiceConfig{})
	ctx := context.Background()

	entry, err := svc.Create(ctx, CreateEntryRequest{ProductID: "P001", Quantity: 5})
	require.NoError(t, err)
	require.NotEmpty(t, entry.ID, "id assigned when omitted")
	require.NotEmpty(t, entry.Date, "date defaults to today")
	require.NotNil(t, entry.ProductName)
	require.Equal(t, "Rice 5kg", *entry.ProductName)

	require.EqualValues(t, 25, productStock(t, sdb, "P001"))
}

func TestReceiptUnknownProductRollsBack(t *testing.T) {
	svc, sdb := setup(t, ServiceConfig{})

	_, err := svc.Create(context.Background(), CreateEntryRequest{ProductID: "P404", Quantity: 5})
	require.ErrorIs(t, err, httpx.ErrIntegrity)

	var n int
	require.NoError(t, sdb.QueryRow(`SELECT COUNT(1) FROM stock_entries`).Scan(&n))
	require.Zero(t, n)
}

func TestReceiptQuantityImmutable(t *testing.T) {
	svc, _ := setup(t, ServiceConfig{})
	ctx := context.Background()

	entry, err := svc.Create(ctx, CreateEntryRequest{ID: "ST001", ProductID: "P001", Quantity: 5})
	require.NoError(t, err)

	qty := int64(9)
	_, err = svc.Update(ctx, entry.ID, UpdateEntryRequest{Quantity: &qty})
	require.ErrorIs(t, err, httpx.ErrValidation)

	date := "2024-04-01"
	updated, err := svc.Update(ctx, entry.ID, UpdateEntryRequest{Date: &date})
	require.NoError(t, err)
	require.Equal(t, "2024-04-01", updated.Date)
	require.EqualValues(t, 5, updated.Quantity)
}

func TestDeleteReceiptReversesStock(t *testing.T) {
	svc, sdb := setup(t, ServiceConfig{})
	ctx := context.Background()

	entry, err := svc.Create(ctx, CreateEntryRequest{ProductID: "P001", Quantity: 5})
	require.NoError(t, err)
	require.EqualValues(t, 25, productStock(t, sdb, "P001"))

	require.NoError(t, svc.Delete(ctx, entry.ID))
	require.EqualValues(t, 20, productStock(t, sdb, "P001"))
}

func TestDeleteReceiptGuardsNegativeStock(t *testing.T) {
	svc, sdb := setup(t, ServiceConfig{})
	ctx := context.Background()

	entry, err := svc.Create(ctx, CreateEntryRequest{ProductID: "P001", Quantity: 5})
	require.NoError(t, err)

	// Stock sold down below the receipt's quantity.
	testutil.Exec(t, sdb, `UPDATE products SET quantity_stock = 3 WHERE product_id = 'P001'`)

	err = svc.Delete(ctx, entry.ID)
	require.ErrorIs(t, err, httpx.ErrValidation)

	// Whole reversal rolled back: entry still present, stock untouched.
	_, err = svc.Get(ctx, entry.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, productStock(t, sdb, "P001"))
}

func TestListOrderedByDateDesc(t *testing.T) {
	svc, _ := setup(t, ServiceConfig{})
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateEntryRequest{ID: "ST001", ProductID: "P001", Quantity: 1, Date: "2024-03-01"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateEntryRequest{ID: "ST002", ProductID: "P001", Quantity: 1, Date: "2024-03-09"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "ST002", list[0].ID)
}
