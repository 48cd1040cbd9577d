package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minimart-systems/minimart/internal/platform/httpx"
	"github.com/minimart-systems/minimart/internal/testutil"
)

func TestProductSupplierJoin(t *testing.T) {
	sdb := testutil.NewDB(t)
	svc := NewService(NewRepository(sdb))
	ctx := context.Background()
	testutil.Exec(t, sdb, `INSERT INTO suppliers (supplier_id, name) VALUES ('S001', 'Everfresh')`)

	sup := "S001"
	withSupplier, err := svc.Create(ctx, CreateProductRequest{
		ID: "P001", Name: "Rice 5kg", Price: 12.5, QuantityStock: 20, SupplierID: &sup,
	})
	require.NoError(t, err)
	require.NotNil(t, withSupplier.SupplierName)
	require.Equal(t, "Everfresh", *withSupplier.SupplierName)

	orphan, err := svc.Create(ctx, CreateProductRequest{ID: "P002", Name: "Detergent", Price: 8.2})
	require.NoError(t, err)
	require.Nil(t, orphan.SupplierID)
	require.Nil(t, orphan.SupplierName)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// name ASC: Detergent before Rice.
	require.Equal(t, "P002", list[0].ID)
}

func TestProductUnknownSupplier(t *testing.T) {
	svc := NewService(NewRepository(testutil.NewDB(t)))

	ghost := "S404"
	_, err := svc.Create(context.Background(), CreateProductRequest{
		ID: "P001", Name: "Rice", SupplierID: &ghost,
	})
	require.ErrorIs(t, err, httpx.ErrIntegrity)
}

func TestProductPartialUpdate(t *testing.T) {
	svc := NewService(NewRepository(testutil.NewDB(t)))
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateProductRequest{ID: "P001", Name: "Rice 5kg", Price: 12.5, QuantityStock: 20})
	require.NoError(t, err)

	price := 13.0
	updated, err := svc.Update(ctx, "P001", UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	require.Equal(t, 13.0, updated.Price)
	require.Equal(t, "Rice 5kg", updated.Name)
	require.EqualValues(t, 20, updated.QuantityStock)
}

func TestProductNotFound(t *testing.T) {
	svc := NewService(NewRepository(testutil.NewDB(t)))
	ctx := context.Background()

	_, err := svc.Get(ctx, "P404")
	require.ErrorIs(t, err, httpx.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, "P404"), httpx.ErrNotFound)
}
