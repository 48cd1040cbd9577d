// Package db manages the SQLite store shared by every resource service.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open opens (creating if absent) the database file at path. Foreign key
// enforcement is switched on per connection; WAL keeps concurrent readers
// from blocking on the single writer.
func Open(path string) (*sql.DB, error) {
	dsn := path + "?_pragma=busy_timeout=5000&_pragma=journal_mode=WAL&_pragma=foreign_keys=ON"
	sdb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("platform/db: open %s: %w", path, err)
	}
	if err := sdb.Ping(); err != nil {
		sdb.Close()
		return nil, fmt.Errorf("platform/db: ping: %w", err)
	}
	return sdb, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS customers (
	cust_id TEXT PRIMARY KEY,
	name    TEXT NOT NULL,
	email   TEXT,
	phone   TEXT,
	city    TEXT
);

CREATE TABLE IF NOT EXISTS suppliers (
	supplier_id TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	email       TEXT,
	phone       TEXT,
	city        TEXT
);

CREATE TABLE IF NOT EXISTS products (
	product_id     TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	price          REAL NOT NULL DEFAULT 0,
	quantity_stock INTEGER NOT NULL DEFAULT 0,
	supplier_id    TEXT REFERENCES suppliers(supplier_id)
);

CREATE TABLE IF NOT EXISTS stock_entries (
	stock_id    TEXT PRIMARY KEY,
	product_id  TEXT NOT NULL REFERENCES products(product_id),
	supplier_id TEXT REFERENCES suppliers(supplier_id),
	quantity    INTEGER NOT NULL,
	entry_date  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS invoices (
	invoice_id   TEXT PRIMARY KEY,
	cust_id      TEXT NOT NULL REFERENCES customers(cust_id),
	invoice_date TEXT NOT NULL,
	total_amt    REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS sales (
	sales_id      TEXT PRIMARY KEY,
	product_id    TEXT NOT NULL REFERENCES products(product_id),
	invoice_id    TEXT REFERENCES invoices(invoice_id),
	quantity_sold INTEGER NOT NULL,
	price_total   REAL NOT NULL DEFAULT 0,
	sale_date     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS loans (
	loan_id       TEXT PRIMARY KEY,
	cust_id       TEXT NOT NULL REFERENCES customers(cust_id),
	loan_amount   REAL NOT NULL,
	interest_rate REAL NOT NULL DEFAULT 0,
	start_date    TEXT NOT NULL,
	balance       REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS payments (
	pay_id      TEXT PRIMARY KEY,
	loan_id     TEXT NOT NULL REFERENCES loans(loan_id),
	amount_paid REAL NOT NULL,
	pay_date    TEXT NOT NULL,
	mode        TEXT NOT NULL DEFAULT 'CASH'
);
`

// Migrate creates the eight tables when they do not exist yet. Safe to run
// on every startup.
func Migrate(ctx context.Context, sdb *sql.DB) error {
	if _, err := sdb.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("platform/db: migrate: %w", err)
	}
	return nil
}
