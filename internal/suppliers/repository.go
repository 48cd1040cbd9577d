package suppliers

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

func (r *Repository) List(ctx context.Context) ([]Supplier, error) {
	rows, err := r.sdb.QueryContext(ctx,
		`SELECT supplier_id, name, email, phone, city FROM suppliers ORDER BY name ASC`)
	if err != nil {
		return nil, platformdb.Translate(err)
	}
	defer rows.Close()

	out := []Supplier{}
	for rows.Next() {
		var s Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.City); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repository) Get(ctx context.Context, id string) (Supplier, error) {
	var s Supplier
	err := r.sdb.QueryRowContext(ctx,
		`SELECT supplier_id, name, email, phone, city FROM suppliers WHERE supplier_id = ?`, id).
		Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.City)
	if err != nil {
		return Supplier{}, platformdb.Translate(err)
	}
	return s, nil
}

func (r *Repository) Create(ctx context.Context, s Supplier) error {
	_, err := r.sdb.ExecContext(ctx,
		`INSERT INTO suppliers (supplier_id, name, email, phone, city) VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Email, s.Phone, s.City)
	return platformdb.Translate(err)
}

func (r *Repository) Update(ctx context.Context, id string, req UpdateSupplierRequest) error {
	res, err := r.sdb.ExecContext(ctx,
		`UPDATE suppliers SET
			name  = COALESCE(?, name),
			email = COALESCE(?, email),
			phone = COALESCE(?, phone),
			city  = COALESCE(?, city)
		WHERE supplier_id = ?`,
		req.Name, req.Email, req.Phone, req.City, id)
	if err != nil {
		return platformdb.Translate(err)
	}
	return platformdb.RequireRowMatched(res)
}

// Delete fails with an integrity error while any product or stock entry
// still references the supplier.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.sdb.ExecContext(ctx, `DELETE FROM suppliers WHERE supplier_id = ?`, id)
	if err != nil {
		return platformdb.Translate(err)
	}
	return platformdb.RequireRowMatched(res)
}
