// Package payments records loan repayments. Posting a payment decrements
// the referenced loan's balance inside the same transaction; the recorded
// amount_paid is immutable.
package payments

// ModeCash is the default payment mode when none is supplied.
const ModeCash = "CASH"

type Payment struct {
	ID         string  `json:"pay_id"`
	LoanID     string  `json:"loan_id"`
	AmountPaid float64 `json:"amount_paid"`
	Date       string  `json:"date"`
	Mode       string  `json:"mode"`
}

type CreatePaymentRequest struct {
	ID         string  `json:"pay_id" validate:"omitempty,max=50"`
	LoanID     string  `json:"loan_id" validate:"required,max=50"`
	AmountPaid float64 `json:"amount_paid" validate:"required,gt=0"`
	Date       string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Mode       string  `json:"mode" validate:"omitempty,max=30"`
}

// UpdatePaymentRequest carries the mutable fields; amount_paid is rejected.
type UpdatePaymentRequest struct {
	Date       *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Mode       *string  `json:"mode" validate:"omitempty,min=1,max=30"`
	AmountPaid *float64 `json:"amount_paid"`
}
