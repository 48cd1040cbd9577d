package customers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minimart-systems/minimart/internal/platform/httpx"
	"github.com/minimart-systems/minimart/internal/testutil"
)

func newService(t *testing.T) *Service {
	return NewService(NewRepository(testutil.NewDB(t)))
}

func strptr(s string) *string { return &s }

func TestCreateRoundTrip(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateCustomerRequest{ID: "C010", Name: "Test User"})
	require.NoError(t, err)
	require.Equal(t, "C010", created.ID)

	got, err := svc.Get(ctx, "C010")
	require.NoError(t, err)
	require.Equal(t, "Test User", got.Name)
	require.Nil(t, got.Email)
	require.Nil(t, got.Phone)
}

func TestCreateDuplicate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateCustomerRequest{ID: "C001", Name: "First"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateCustomerRequest{ID: "C001", Name: "Second"})
	require.ErrorIs(t, err, httpx.ErrDuplicate)
}

func TestCreateRequiresName(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), CreateCustomerRequest{ID: "C001", Name: "   "})
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestPartialUpdateKeepsOmittedFields(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateCustomerRequest{
		ID: "C001", Name: "Asha Rao", Email: strptr("asha@example.com"), City: strptr("Portside"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "C001", UpdateCustomerRequest{Phone: strptr("555-0100")})
	require.NoError(t, err)
	require.Equal(t, "Asha Rao", updated.Name)
	require.NotNil(t, updated.Email)
	require.Equal(t, "asha@example.com", *updated.Email)
	require.NotNil(t, updated.Phone)
	require.Equal(t, "555-0100", *updated.Phone)
	require.NotNil(t, updated.City)
}

func TestUpdateMissingCustomer(t *testing.T) {
	svc := newService(t)

	_, err := svc.Update(context.Background(), "nope", UpdateCustomerRequest{Name: strptr("X")})
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestDeleteThenGet(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateCustomerRequest{ID: "C001", Name: "Asha"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "C001"))

	_, err = svc.Get(ctx, "C001")
	require.ErrorIs(t, err, httpx.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, "C001"), httpx.ErrNotFound)
}

func TestListSubstringFilter(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateCustomerRequest{ID: "C001", Name: "Asha Rao", Email: strptr("asha@example.com")})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateCustomerRequest{ID: "C002", Name: "Ben Ortiz", City: strptr("Eastbay")})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateCustomerRequest{ID: "C003", Name: "Lena Fischer"})
	require.NoError(t, err)

	// Matches across name, email and city, case-insensitively.
	byName, err := svc.List(ctx, ListFilter{Query: "ASHA"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	require.Equal(t, "C001", byName[0].ID)

	byCity, err := svc.List(ctx, ListFilter{Query: "eastbay"})
	require.NoError(t, err)
	require.Len(t, byCity, 1)
	require.Equal(t, "C002", byCity[0].ID)

	// Empty filter returns everything ordered by name.
	all, err := svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "Asha Rao", all[0].Name)
	require.Equal(t, "Ben Ortiz", all[1].Name)
	require.Equal(t, "Lena Fischer", all[2].Name)
}

func TestListPaging(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, c := range []CreateCustomerRequest{
		{ID: "C001", Name: "Anna"}, {ID: "C002", Name: "Bob"}, {ID: "C003", Name: "Cara"},
	} {
		_, err := svc.Create(ctx, c)
		require.NoError(t, err)
	}

	page2, err := svc.List(ctx, ListFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page2, 1)
	require.Equal(t, "Cara", page2[0].Name)
}
