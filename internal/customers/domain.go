// Package customers implements the customer resource service.
package customers

// Customer is a person who buys products or holds loans.
type Customer struct {
	ID    string  `json:"cust_id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	City  *string `json:"city"`
}

type CreateCustomerRequest struct {
	ID    string  `json:"cust_id" validate:"required,max=50"`
	Name  string  `json:"name" validate:"required,max=200"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone" validate:"omitempty,max=50"`
	City  *string `json:"city" validate:"omitempty,max=100"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone" validate:"omitempty,max=50"`
	City  *string `json:"city" validate:"omitempty,max=100"`
}

// ListFilter narrows and pages the customer listing. Query is matched
// case-insensitively against id, name, email, phone and city combined.
type ListFilter struct {
	Query string
	Page  int
	Limit int
}
