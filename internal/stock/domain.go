// Package stock records stock receipts. Posting a receipt increments the
// referenced product's quantity_stock inside the same transaction; the
// recorded quantity itself is immutable.
package stock

type Entry struct {
	ID         string  `json:"stock_id"`
	ProductID  string  `json:"product_id"`
	SupplierID *string `json:"supplier_id"`
	Quantity   int64   `json:"quantity"`
	Date       string  `json:"date"`
	// ProductName is resolved by a left join for listings.
	ProductName *string `json:"product_name"`
}

type CreateEntryRequest struct {
	ID         string  `json:"stock_id" validate:"omitempty,max=50"`
	ProductID  string  `json:"product_id" validate:"required,max=50"`
	SupplierID *string `json:"supplier_id" validate:"omitempty,max=50"`
	Quantity   int64   `json:"quantity" validate:"required,gt=0"`
	Date       string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateEntryRequest carries the mutable fields. Quantity is decoded only so
// the service can reject it: a recorded delta cannot be edited, only reversed
// by delete.
type UpdateEntryRequest struct {
	SupplierID *string `json:"supplier_id" validate:"omitempty,max=50"`
	Date       *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Quantity   *int64  `json:"quantity"`
}
