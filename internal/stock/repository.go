package stock

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

const entrySelect = `
	SELECT e.stock_id, e.product_id, e.supplier_id, e.quantity, e.entry_date, p.name
	FROM stock_entries e
	LEFT JOIN products p ON p.product_id = e.product_id`

func scanEntry(row interface{ Scan(...any) error }) (Entry, error) {
	var e Entry
	err := row.Scan(&e.ID, &e.ProductID, &e.SupplierID, &e.Quantity, &e.Date, &e.ProductName)
	return e, err
}

func (r *Repository) List(ctx context.Context) ([]Entry, error) {
	rows, err := r.sdb.QueryContext(ctx, entrySelect+` ORDER BY e.entry_date DESC, e.stock_id DESC`)
	if err != nil {
		return nil, platformdb.Translate(err)
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repository) Get(ctx context.Context, id string) (Entry, error) {
	e, err := scanEntry(r.sdb.QueryRowContext(ctx, entrySelect+` WHERE e.stock_id = ?`, id))
	if err != nil {
		return Entry{}, platformdb.Translate(err)
	}
	return e, nil
}

// Create inserts the receipt and increments the product's quantity_stock as
// one transaction: neither write is visible without the other. The relative
// UPDATE keeps concurrent receipts against one product from losing updates.
func (r *Repository) Create(ctx context.Context, e Entry) error {
	return platformdb.WithTx(ctx, r.sdb, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO stock_entries (stock_id, product_id, supplier_id, quantity, entry_date) VALUES (?, ?, ?, ?, ?)`,
			e.ID, e.ProductID, e.SupplierID, e.Quantity, e.Date)
		if err != nil {
			return platformdb.Translate(err)
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE products SET quantity_stock = quantity_stock + ? WHERE product_id = ?`,
			e.Quantity, e.ProductID)
		return platformdb.Translate(err)
	})
}

func (r *Repository) Update(ctx context.Context, id string, req UpdateEntryRequest) error {
	res, err := r.sdb.ExecContext(ctx,
		`UPDATE stock_entries SET
			supplier_id = COALESCE(?, supplier_id),
			entry_date  = COALESCE(?, entry_date)
		WHERE stock_id = ?`,
		req.SupplierID, req.Date, id)
	if err != nil {
		return platformdb.Translate(err)
	}
	return platformdb.RequireRowMatched(res)
}

// Delete removes the receipt and reverses its propagation, so the product's
// running total still equals the sum of its surviving deltas. When the
// reversal would drive stock negative it fails unless allowNegative is set.
func (r *Repository) Delete(ctx context.Context, id string, allowNegative bool) error {
	return platformdb.WithTx(ctx, r.sdb, func(tx *sql.Tx) error {
		var productID string
		var qty int64
		err := tx.QueryRowContext(ctx,
			`SELECT product_id, quantity FROM stock_entries WHERE stock_id = ?`, id).
			Scan(&productID, &qty)
		if err != nil {
			return platformdb.Translate(err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM stock_entries WHERE stock_id = ?`, id); err != nil {
			return platformdb.Translate(err)
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE products SET quantity_stock = quantity_stock - ? WHERE product_id = ?`,
			qty, productID); err != nil {
			return platformdb.Translate(err)
		}
		if !allowNegative {
			var remaining int64
			if err := tx.QueryRowContext(ctx,
				`SELECT quantity_stock FROM products WHERE product_id = ?`, productID).
				Scan(&remaining); err != nil {
				return platformdb.Translate(err)
			}
			if remaining < 0 {
				return fmt.Errorf("%w: removing receipt %s would leave product %s at %d",
					httpx.ErrValidation, id, productID, remaining)
			}
		}
		return nil
	})
}
