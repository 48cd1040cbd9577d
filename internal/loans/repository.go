package loans

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

const loanColumns = `loan_id, cust_id, loan_amount, interest_rate, start_date, balance`

func scanLoan(row interface{ Scan(...any) error }) (Loan, error) {
	var l Loan
	err := row.Scan(&l.ID, &l.CustID, &l.LoanAmount, &l.InterestRate, &l.StartDate, &l.Balance)
	return l, err
}

func (r *Repository) List(ctx context.Context) ([]Loan, error) {
	rows, err := r.sdb.QueryContext(ctx,
		`SELECT `+loanColumns+` FROM loans ORDER BY start_date DESC, loan_id DESC`)
	if err != nil {
		return nil, platformdb.Translate(err)
	}
	defer rows.Close()

	out := []Loan{}
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *Repository) Get(ctx context.Context, id string) (Loan, error) {
	l, err := scanLoan(r.sdb.QueryRowContext(ctx,
		`SELECT `+loanColumns+` FROM loans WHERE loan_id = ?`, id))
	if err != nil {
		return Loan{}, platformdb.Translate(err)
	}
	return l, nil
}

func (r *Repository) Create(ctx context.Context, l Loan) error {
	_, err := r.sdb.ExecContext(ctx,
		`INSERT INTO loans (`+loanColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		l.ID, l.CustID, l.LoanAmount, l.InterestRate, l.StartDate, l.Balance)
	return platformdb.Translate(err)
}

func (r *Repository) Update(ctx context.Context, id string, req UpdateLoanRequest) error {
	res, err := r.sdb.ExecContext(ctx,
		`UPDATE loans SET
			cust_id       = COALESCE(?, cust_id),
			interest_rate = COALESCE(?, interest_rate),
			start_date    = COALESCE(?, start_date)
		WHERE loan_id = ?`,
		req.CustID, req.InterestRate, req.StartDate, id)
	if err != nil {
		return platformdb.Translate(err)
	}
	return platformdb.RequireRowMatched(res)
}

// Delete fails with an integrity error while payments still reference the loan.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.sdb.ExecContext(ctx, `DELETE FROM loans WHERE loan_id = ?`, id)
	if err != nil {
		return platformdb.Translate(err)
	}
	return platformdb.RequireRowMatched(res)
}
