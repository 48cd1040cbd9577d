package products

import (
	"context"
	"database/sql"

	platformdb "github.com/minimart-systems/minimart/internal/platform/db"
)

type Repository struct {
	sdb *sql.DB
}

func NewRepository(sdb *sql.DB) *Repository {
	return &Repository{sdb: sdb}
}

const productSelect = `
	SELECT p.product_id, p.name, p.price, p.quantity_stock, p.supplier_id, s.name
	FROM products p
	LEFT JOIN suppliers s ON s.supplier_id = p.supplier_id`

func scanProduct(row interface{ Scan(...any) error }) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.QuantityStock, &p.SupplierID, &p.SupplierName)
	return p, err
}

func (r *Repository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.sdb.QueryContext(ctx, productSelect+` ORDER BY p.name ASC`)
	if err != nil {
		return nil, platformdb.Translate(err)
	}
	defer rows.Close()

	out := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repository) Get(ctx context.Context, id string) (Product, error) {
	p, err := scanProduct(r.sdb.QueryRowContext(ctx, productSelect+` WHERE p.product_id = ?`, id))
	if err != nil {
		return Product{}, platformdb.Translate(err)
	}
	return p, nil
}

func (r *Repository) Create(ctx context.Context, p Product) error {
	_, err := r.sdb.ExecContext(ctx,
		`INSERT INTO products (product_id, name, price, quantity_stock, supplier_id) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Price, p.QuantityStock, p.SupplierID)
	return platformdb.Translate(err)
}

func (r *Repository) Update(ctx context.Context, id string, req UpdateProductRequest) error {
	res, err := r.sdb.ExecContext(ctx,
		`UPDATE products SET
			name           = COALESCE(?, name),
			price          = COALESCE(?, price),
			quantity_stock = COALESCE(?, quantity_stock),
			supplier_id    = COALESCE(?, supplier_id)
		WHERE product_id = ?`,
		req.Name, req.Price, req.QuantityStock, req.SupplierID, id)
	if err != nil {
		return platformdb.Translate(err)
	}
	return platformdb.RequireRowMatched(res)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.sdb.ExecContext(ctx, `DELETE FROM products WHERE product_id = ?`, id)
	if err != nil {
		return platformdb.Translate(err)
	}
	return platformdb.RequireRowMatched(res)
}
