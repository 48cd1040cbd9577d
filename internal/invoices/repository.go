package invoices

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

func (r *Repository) List(ctx context.Context) ([]Invoice, error) {
	rows, err := r.sdb.QueryContext(ctx,
		`SELECT invoice_id, cust_id, invoice_date, total_amt FROM invoices ORDER BY invoice_date DESC, invoice_id DESC`)
	if err != nil {
		return nil, platformdb.Translate(err)
	}
	defer rows.Close()

	out := []Invoice{}
	for rows.Next() {
		var inv Invoice
		if err := rows.Scan(&inv.ID, &inv.CustID, &inv.Date, &inv.TotalAmt); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *Repository) Get(ctx context.Context, id string) (Invoice, error) {
	var inv Invoice
	err := r.sdb.QueryRowContext(ctx,
		`SELECT invoice_id, cust_id, invoice_date, total_amt FROM invoices WHERE invoice_id = ?`, id).
		Scan(&inv.ID, &inv.CustID, &inv.Date, &inv.TotalAmt)
	if err != nil {
		return Invoice{}, platformdb.Translate(err)
	}
	return inv, nil
}

func (r *Repository) Create(ctx context.Context, inv Invoice) error {
	_, err := r.sdb.ExecContext(ctx,
		`INSERT INTO invoices (invoice_id, cust_id, invoice_date, total_amt) VALUES (?, ?, ?, ?)`,
		inv.ID, inv.CustID, inv.Date, inv.TotalAmt)
	return platformdb.Translate(err)
}

func (r *Repository) Update(ctx context.Context, id string, req UpdateInvoiceRequest) error {
	res, err := r.sdb.ExecContext(ctx,
		`UPDATE invoices SET
			cust_id      = COALESCE(?, cust_id),
			invoice_date = COALESCE(?, invoice_date),
			total_amt    = COALESCE(?, total_amt)
		WHERE invoice_id = ?`,
		req.CustID, req.Date, req.TotalAmt, id)
	if err != nil {
		return platformdb.Translate(err)
	}
	return platformdb.RequireRowMatched(res)
}

// Delete fails with an integrity error while a sale still references the invoice.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.sdb.ExecContext(ctx, `DELETE FROM invoices WHERE invoice_id = ?`, id)
	if err != nil {
		return platformdb.Translate(err)
	}
	return platformdb.RequireRowMatched(res)
}
