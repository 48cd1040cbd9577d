package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Seed inserts a fixed demonstration dataset. It is a no-op unless the
// customers table is empty, so repeated startups never duplicate rows.
func Seed(ctx context.Context, sdb *sql.DB) error {
	var n int
	if err := sdb.QueryRowContext(ctx, `SELECT COUNT(1) FROM customers`).Scan(&n); err != nil {
		return fmt.Errorf("platform/db: seed precheck: %w", err)
	}
	if n > 0 {
		return nil
	}

	stmts := []struct {
		query string
		args  []any
	}{
		{`INSERT INTO suppliers (supplier_id, name, email, phone, city) VALUES (?, ?, ?, ?, ?)`,
			[]any{"S001", "Everfresh Wholesale", "orders@everfresh.example", "555-0101", "Portside"}},
		{`INSERT INTO suppliers (supplier_id, name, email, phone, city) VALUES (?, ?, ?, ?, ?)`,
			[]any{"S002", "Harbor Goods", "sales@harborgoods.example", "555-0102", "Eastbay"}},

		{`INSERT INTO customers (cust_id, name, email, phone, city) VALUES (?, ?, ?, ?, ?)`,
			[]any{"C001", "Asha Rao", "asha@example.com", "555-0201", "Portside"}},
		{`INSERT INTO customers (cust_id, name, email, phone, city) VALUES (?, ?, ?, ?, ?)`,
			[]any{"C002", "Ben Ortiz", "ben@example.com", "555-0202", "Eastbay"}},
		{`INSERT INTO customers (cust_id, name, email, phone, city) VALUES (?, ?, NULL, NULL, ?)`,
			[]any{"C003", "Lena Fischer", "Portside"}},

		{`INSERT INTO products (product_id, name, price, quantity_stock, supplier_id) VALUES (?, ?, ?, ?, ?)`,
			[]any{"P001", "Rice 5kg", 12.50, 20, "S001"}},
		{`INSERT INTO products (product_id, name, price, quantity_stock, supplier_id) VALUES (?, ?, ?, ?, ?)`,
			[]any{"P002", "Cooking Oil 1L", 3.75, 35, "S001"}},
		{`INSERT INTO products (product_id, name, price, quantity_stock, supplier_id) VALUES (?, ?, ?, ?, ?)`,
			[]any{"P003", "Detergent", 8.20, 14, "S002"}},

		{`INSERT INTO stock_entries (stock_id, product_id, supplier_id, quantity, entry_date) VALUES (?, ?, ?, ?, ?)`,
			[]any{"ST001", "P001", "S001", 25, "2024-03-01"}},
		{`INSERT INTO stock_entries (stock_id, product_id, supplier_id, quantity, entry_date) VALUES (?, ?, ?, ?, ?)`,
			[]any{"ST002", "P002", "S001", 40, "2024-03-02"}},
		{`INSERT INTO stock_entries (stock_id, product_id, supplier_id, quantity, entry_date) VALUES (?, ?, ?, ?, ?)`,
			[]any{"ST003", "P003", "S002", 14, "2024-03-05"}},

		{`INSERT INTO invoices (invoice_id, cust_id, invoice_date, total_amt) VALUES (?, ?, ?, ?)`,
			[]any{"IN001", "C001", "2024-03-10", 62.50}},

		{`INSERT INTO sales (sales_id, product_id, invoice_id, quantity_sold, price_total, sale_date) VALUES (?, ?, ?, ?, ?, ?)`,
			[]any{"SA001", "P001", "IN001", 5, 62.50, "2024-03-10"}},
		{`INSERT INTO sales (sales_id, product_id, invoice_id, quantity_sold, price_total, sale_date) VALUES (?, ?, NULL, ?, ?, ?)`,
			[]any{"SA002", "P002", 5, 18.75, "2024-03-11"}},

		{`INSERT INTO loans (loan_id, cust_id, loan_amount, interest_rate, start_date, balance) VALUES (?, ?, ?, ?, ?, ?)`,
			[]any{"L001", "C002", 5000, 0.05, "2024-01-15", 4200}},
		{`INSERT INTO loans (loan_id, cust_id, loan_amount, interest_rate, start_date, balance) VALUES (?, ?, ?, ?, ?, ?)`,
			[]any{"L002", "C003", 12000, 0.04, "2024-02-01", 12000}},

		{`INSERT INTO payments (pay_id, loan_id, amount_paid, pay_date, mode) VALUES (?, ?, ?, ?, ?)`,
			[]any{"PM001", "L001", 800, "2024-02-15", "CASH"}},
	}

	return WithTx(ctx, sdb, func(tx *sql.Tx) error {
		for _, s := range stmts {
			if _, err := tx.ExecContext(ctx, s.query, s.args...); err != nil {
				return fmt.Errorf("platform/db: seed: %w", err)
			}
		}
		return nil
	})
}
