// Package sales records sales. Posting a sale decrements the referenced
// product's quantity_stock inside the same transaction; the recorded
// quantity_sold is immutable.
package sales

type Sale struct {
	ID           string  `json:"sales_id"`
	ProductID    string  `json:"product_id"`
	InvoiceID    *string `json:"invoice_id"`
	QuantitySold int64   `json:"quantity_sold"`
	PriceTotal   float64 `json:"price_total"`
	Date         string  `json:"date"`
}

type CreateSaleRequest struct {
	ID           string  `json:"sales_id" validate:"omitempty,max=50"`
	ProductID    string  `json:"product_id" validate:"required,max=50"`
	InvoiceID    *string `json:"invoice_id" validate:"omitempty,max=50"`
	QuantitySold int64   `json:"quantity_sold" validate:"required,gt=0"`
	PriceTotal   float64 `json:"price_total" validate:"gte=0"`
	Date         string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateSaleRequest carries the mutable fields; quantity_sold is rejected.
type UpdateSaleRequest struct {
	InvoiceID    *string  `json:"invoice_id" validate:"omitempty,max=50"`
	PriceTotal   *float64 `json:"price_total" validate:"omitempty,gte=0"`
	Date         *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	QuantitySold *int64   `json:"quantity_sold"`
}
