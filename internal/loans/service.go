package loans

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minimart-systems/minimart/internal/platform/httpx"
)

type Service struct {
	repo *Repository
	now  func() time.Time
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Loan, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Loan, error) {
	return s.repo.Get(ctx, id)
}

// Create opens a loan with balance equal to the principal.
func (s *Service) Create(ctx context.Context, req CreateLoanRequest) (Loan, error) {
	if strings.TrimSpace(req.ID) == "" {
		return Loan{}, fmt.Errorf("%w: loan_id is required", httpx.ErrValidation)
	}
	if strings.TrimSpace(req.CustID) == "" {
		return Loan{}, fmt.Errorf("%w: cust_id is required", httpx.ErrValidation)
	}
	if req.LoanAmount <= 0 {
		return Loan{}, fmt.Errorf("%w: loan_amount must be positive", httpx.ErrValidation)
	}
	l := Loan{
		ID:           req.ID,
		CustID:       req.CustID,
		LoanAmount:   req.LoanAmount,
		InterestRate: req.InterestRate,
		StartDate:    req.StartDate,
		Balance:      req.LoanAmount,
	}
	if l.StartDate == "" {
		l.StartDate = s.now().Format("2006-01-02")
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return Loan{}, err
	}
	return l, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateLoanRequest) (Loan, error) {
	if req.LoanAmount != nil {
		return Loan{}, fmt.Errorf("%w: loan_amount is fixed at creation", httpx.ErrValidation)
	}
	if req.Balance != nil {
		return Loan{}, fmt.Errorf("%w: balance is maintained by payments and cannot be set", httpx.ErrValidation)
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return Loan{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
