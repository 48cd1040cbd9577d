package customers

import (
	"context"
	"database/sql"
	"strings"

	platformdb "github.com/minimart-systems/minimart/internal/platform/db"
)

// Repository persists customers in the shared SQLite store.
type Repository struct {
	sdb *sql.DB
}

func NewRepository(sdb *sql.DB) *Repository {
	return &Repository{sdb: sdb}
}

const customerColumns = `cust_id, name, email, phone, city`

func scanCustomer(row interface{ Scan(...any) error }) (Customer, error) {
	var c Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City)
	return c, err
}

func (r *Repository) List(ctx context.Context, filter ListFilter) ([]Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers`
	args := []any{}

	if filter.Query != "" {
		query += ` WHERE lower(cust_id || ' ' || name || ' ' || ifnull(email,'') || ' ' || ifnull(phone,'') || ' ' || ifnull(city,'')) LIKE ?`
		args = append(args, "%"+strings.ToLower(filter.Query)+"%")
	}
	query += ` ORDER BY name ASC`
	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		if offset < 0 {
			offset = 0
		}
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.Limit, offset)
	}

	rows, err := r.sdb.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, platformdb.Translate(err)
	}
	defer rows.Close()

	out := []Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repository) Get(ctx context.Context, id string) (Customer, error) {
	row := r.sdb.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE cust_id = ?`, id)
	c, err := scanCustomer(row)
	if err != nil {
		return Customer{}, platformdb.Translate(err)
	}
	return c, nil
}

func (r *Repository) Create(ctx context.Context, c Customer) error {
	_, err := r.sdb.ExecContext(ctx,
		`INSERT INTO customers (cust_id, name, email, phone, city) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Email, c.Phone, c.City)
	return platformdb.Translate(err)
}

// Update applies a partial update: nil fields keep their stored values.
func (r *Repository) Update(ctx context.Context, id string, req UpdateCustomerRequest) error {
	res, err := r.sdb.ExecContext(ctx,
		`UPDATE customers SET
			name  = COALESCE(?, name),
			email = COALESCE(?, email),
			phone = COALESCE(?, phone),
			city  = COALESCE(?, city)
		WHERE cust_id = ?`,
		req.Name, req.Email, req.Phone, req.City, id)
	if err != nil {
		return platformdb.Translate(err)
	}
	return platformdb.RequireRowMatched(res)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.sdb.ExecContext(ctx, `DELETE FROM customers WHERE cust_id = ?`, id)
	if err != nil {
		return platformdb.Translate(err)
	}
	return platformdb.RequireRowMatched(res)
}
