package payments

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

const paymentColumns = `pay_id, loan_id, amount_paid, pay_date, mode`

func scanPayment(row interface{ Scan(...any) error }) (Payment, error) {
	var p Payment
	err := row.Scan(&p.ID, &p.LoanID, &p.AmountPaid, &p.Date, &p.Mode)
	return p, err
}

func (r *Repository) List(ctx context.Context) ([]Payment, error) {
	rows, err := r.sdb.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments ORDER BY pay_date DESC, pay_id DESC`)
	if err != nil {
		return nil, platformdb.Translate(err)
	}
	defer rows.Close()

	out := []Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repository) Get(ctx context.Context, id string) (Payment, error) {
	p, err := scanPayment(r.sdb.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE pay_id = ?`, id))
	if err != nil {
		return Payment{}, platformdb.Translate(err)
	}
	return p, nil
}

// Create inserts the payment and decrements the loan's balance in one
// transaction. With allowOverpay unset, a payment that would drive the
// balance negative fails and nothing persists.
func (r *Repository) Create(ctx context.Context, p Payment, allowOverpay bool) error {
	return platformdb.WithTx(ctx, r.sdb, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO payments (`+paymentColumns+`) VALUES (?, ?, ?, ?, ?)`,
			p.ID, p.LoanID, p.AmountPaid, p.Date, p.Mode)
		if err != nil {
			return platformdb.Translate(err)
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE loans SET balance = balance - ? WHERE loan_id = ?`,
			p.AmountPaid, p.LoanID); err != nil {
			return platformdb.Translate(err)
		}
		if !allowOverpay {
			var balance float64
			if err := tx.QueryRowContext(ctx,
				`SELECT balance FROM loans WHERE loan_id = ?`, p.LoanID).
				Scan(&balance); err != nil {
				return platformdb.Translate(err)
			}
			if balance < 0 {
				return fmt.Errorf("%w: payment exceeds outstanding balance of loan %s", httpx.ErrValidation, p.LoanID)
			}
		}
		return nil
	})
}

func (r *Repository) Update(ctx context.Context, id string, req UpdatePaymentRequest) error {
	res, err := r.sdb.ExecContext(ctx,
		`UPDATE payments SET
			pay_date = COALESCE(?, pay_date),
			mode     = COALESCE(?, mode)
		WHERE pay_id = ?`,
		req.Date, req.Mode, id)
	if err != nil {
		return platformdb.Translate(err)
	}
	return platformdb.RequireRowMatched(res)
}

// Delete removes the payment and restores the amount to the loan balance.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return platformdb.WithTx(ctx, r.sdb, func(tx *sql.Tx) error {
		var loanID string
		var amount float64
		err := tx.QueryRowContext(ctx,
			`SELECT loan_id, amount_paid FROM payments WHERE pay_id = ?`, id).
			Scan(&loanID, &amount)
		if err != nil {
			return platformdb.Translate(err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM payments WHERE pay_id = ?`, id); err != nil {
			return platformdb.Translate(err)
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE loans SET balance = balance + ? WHERE loan_id = ?`,
			amount, loanID)
		return platformdb.Translate(err)
	})
}
