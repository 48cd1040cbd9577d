// Package summary computes the dashboard aggregates.
package summary

import (
	"context"
	"database/sql"

	"golang.org/x/sync/errgroup"
)

// Summary is the dashboard payload: entity counts plus the outstanding loan
// balance across the whole book.
type Summary struct {
	TotalCustomers  int64   `json:"totalCustomers"`
	TotalProducts   int64   `json:"totalProducts"`
	TotalLoans      int64   `json:"totalLoans"`
	PendingPayments float64 `json:"pendingPayments"`
}

type Service struct {
	sdb *sql.DB
}

func NewService(sdb *sql.DB) *Service {
	return &Service{sdb: sdb}
}

// Get runs the four independent aggregate lookups concurrently and joins
// the results.
func (s *Service) Get(ctx context.Context) (Summary, error) {
	var sum Summary
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.sdb.QueryRowContext(ctx, `SELECT COUNT(1) FROM customers`).Scan(&sum.TotalCustomers)
	})
	g.Go(func() error {
		return s.sdb.QueryRowContext(ctx, `SELECT COUNT(1) FROM products`).Scan(&sum.TotalProducts)
	})
	g.Go(func() error {
		return s.sdb.QueryRowContext(ctx, `SELECT COUNT(1) FROM loans`).Scan(&sum.TotalLoans)
	})
	g.Go(func() error {
		return s.sdb.QueryRowContext(ctx, `SELECT COALESCE(SUM(balance), 0) FROM loans`).Scan(&sum.PendingPayments)
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return sum, nil
}
