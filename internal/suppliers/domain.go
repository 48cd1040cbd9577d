// Package suppliers implements the supplier resource service.
package suppliers

type Supplier struct {
	ID    string  `json:"supplier_id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	City  *string `json:"city"`
}

type CreateSupplierRequest struct {
	ID    string  `json:"supplier_id" validate:"required,max=50"`
	Name  string  `json:"name" validate:"required,max=200"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone" validate:"omitempty,max=50"`
	City  *string `json:"city" validate:"omitempty,max=100"`
}

type UpdateSupplierRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone" validate:"omitempty,max=50"`
	City  *string `json:"city" validate:"omitempty,max=100"`
}
