// Package products implements the product catalog, including the running
// quantity_stock total maintained by stock receipts and sales.
package products

type Product struct {
	ID            string  `json:"product_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	QuantityStock int64   `json:"quantity_stock"`
	SupplierID    *string `json:"supplier_id"`
	// SupplierName is resolved by a left join; null when the product has no
	// supplier set.
	SupplierName *string `json:"supplier_name"`
}

type CreateProductRequest struct {
	ID            string  `json:"product_id" validate:"required,max=50"`
	Name          string  `json:"name" validate:"required,max=200"`
	Price         float64 `json:"price" validate:"gte=0"`
	QuantityStock int64   `json:"quantity_stock" validate:"gte=0"`
	SupplierID    *string `json:"supplier_id" validate:"omitempty,max=50"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	QuantityStock *int64   `json:"quantity_stock"`
	SupplierID    *string  `json:"supplier_id" validate:"omitempty,max=50"`
}
