// Package invoices implements the invoice resource service.
package invoices

type Invoice struct {
	ID       string  `json:"invoice_id"`
	CustID   string  `json:"cust_id"`
	Date     string  `json:"date"`
	TotalAmt float64 `json:"total_amt"`
}

type CreateInvoiceRequest struct {
	ID       string  `json:"invoice_id" validate:"omitempty,max=50"`
	CustID   string  `json:"cust_id" validate:"required,max=50"`
	Date     string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	TotalAmt float64 `json:"total_amt" validate:"gte=0"`
}

type UpdateInvoiceRequest struct {
	CustID   *string  `json:"cust_id" validate:"omitempty,min=1,max=50"`
	Date     *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	TotalAmt *float64 `json:"total_amt" validate:"omitempty,gte=0"`
}
