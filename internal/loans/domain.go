// Package loans implements the loan book. A loan's balance starts at
// loan_amount and is only ever moved by payment writes, so amount and
// balance are not directly editable through the API.
package loans

type Loan struct {
	ID           string  `json:"loan_id"`
	CustID       string  `json:"cust_id"`
	LoanAmount   float64 `json:"loan_amount"`
	InterestRate float64 `json:"interest_rate"`
	StartDate    string  `json:"start_date"`
	Balance      float64 `json:"balance"`
}

type CreateLoanRequest struct {
	ID           string  `json:"loan_id" validate:"required,max=50"`
	CustID       string  `json:"cust_id" validate:"required,max=50"`
	LoanAmount   float64 `json:"loan_amount" validate:"required,gt=0"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0"`
	StartDate    string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateLoanRequest struct {
	CustID       *string  `json:"cust_id" validate:"omitempty,min=1,max=50"`
	InterestRate *float64 `json:"interest_rate" validate:"omitempty,gte=0"`
	StartDate    *string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	LoanAmount   *float64 `json:"loan_amount"`
	Balance      *float64 `json:"balance"`
}
