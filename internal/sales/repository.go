package sales

import (
	"context"
	"database/sql"
	"fmt"

	platformdb "github.com/minimart-systems/minimart/internal/platform/db"
	"github.com/minimart-systems/minimart/internal/platform/httpx"
)

type Repository struct {
	sdb *sql.DB
}

func NewRepository(sdb *sql.DB) *Repository {
	return &Repository{sdb: sdb}
}

const saleColumns = `sales_id, product_id, invoice_id, quantity_sold, price_total, sale_date`

func scanSale(row interface{ Scan(...any) error }) (Sale, error) {
	var s Sale
	err := row.Scan(&s.ID, &s.ProductID, &s.InvoiceID, &s.QuantitySold, &s.PriceTotal, &s.Date)
	return s, err
}

func (r *Repository) List(ctx context.Context) ([]Sale, error) {
	rows, err := r.sdb.QueryContext(ctx,
		`SELECT `+saleColumns+` FROM sales ORDER BY sale_date DESC, sales_id DESC`)
	if err != nil {
		return nil, platformdb.Translate(err)
	}
	defer rows.Close()

	out := []Sale{}
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repository) Get(ctx context.Context, id string) (Sale, error) {
	s, err := scanSale(r.sdb.QueryRowContext(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE sales_id = ?`, id))
	if err != nil {
		return Sale{}, platformdb.Translate(err)
	}
	return s, nil
}

// Create inserts the sale and decrements the product's quantity_stock in one
// transaction. With allowNegative unset, a sale that would oversell the
// product fails and nothing persists.
func (r *Repository) Create(ctx context.Context, s Sale, allowNegative bool) error {
	return platformdb.WithTx(ctx, r.sdb, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO sales (`+saleColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
			s.ID, s.ProductID, s.InvoiceID, s.QuantitySold, s.PriceTotal, s.Date)
		if err != nil {
			return platformdb.Translate(err)
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE products SET quantity_stock = quantity_stock - ? WHERE product_id = ?`,
			s.QuantitySold, s.ProductID); err != nil {
			return platformdb.Translate(err)
		}
		if !allowNegative {
			var remaining int64
			if err := tx.QueryRowContext(ctx,
				`SELECT quantity_stock FROM products WHERE product_id = ?`, s.ProductID).
				Scan(&remaining); err != nil {
				return platformdb.Translate(err)
			}
			if remaining < 0 {
				return fmt.Errorf("%w: insufficient stock for product %s", httpx.ErrValidation, s.ProductID)
			}
		}
		return nil
	})
}

func (r *Repository) Update(ctx context.Context, id string, req UpdateSaleRequest) error {
	res, err := r.sdb.ExecContext(ctx,
		`UPDATE sales SET
			invoice_id  = COALESCE(?, invoice_id),
			price_total = COALESCE(?, price_total),
			sale_date   = COALESCE(?, sale_date)
		WHERE sales_id = ?`,
		req.InvoiceID, req.PriceTotal, req.Date, id)
	if err != nil {
		return platformdb.Translate(err)
	}
	return platformdb.RequireRowMatched(res)
}

// Delete removes the sale and restores the sold quantity to the product.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return platformdb.WithTx(ctx, r.sdb, func(tx *sql.Tx) error {
		var productID string
		var qty int64
		err := tx.QueryRowContext(ctx,
			`SELECT product_id, quantity_sold FROM sales WHERE sales_id = ?`, id).
			Scan(&productID, &qty)
		if err != nil {
			return platformdb.Translate(err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM sales WHERE sales_id = ?`, id); err != nil {
			return platformdb.Translate(err)
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE products SET quantity_stock = quantity_stock + ? WHERE product_id = ?`,
			qty, productID)
		return platformdb.Translate(err)
	})
}
