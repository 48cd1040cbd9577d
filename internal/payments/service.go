package payments

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minimart-systems/minimart/internal/platform/httpx"
)

// ServiceConfig groups optional settings.
type ServiceConfig struct {
	AllowOverpayment bool
}

type Service struct {
	repo         *Repository
	allowOverpay bool
	now          func() time.Time
}

func NewService(repo *Repository, cfg ServiceConfig) *Service {
	return &Service{repo: repo, allowOverpay: cfg.AllowOverpayment, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Payment, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Payment, error) {
	return s.repo.Get(ctx, id)
}

// Create records a repayment. Mode defaults to cash, date to today and the
// id to a fresh uuid when omitted.
func (s *Service) Create(ctx context.Context, req CreatePaymentRequest) (Payment, error) {
	if strings.TrimSpace(req.LoanID) == "" {
		return Payment{}, fmt.Errorf("%w: loan_id is required", httpx.ErrValidation)
	}
	if req.AmountPaid <= 0 {
		return Payment{}, fmt.Errorf("%w: amount_paid must be positive", httpx.ErrValidation)
	}
	p := Payment{
		ID:         req.ID,
		LoanID:     req.LoanID,
		AmountPaid: req.AmountPaid,
		Date:       req.Date,
		Mode:       req.Mode,
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Date == "" {
		p.Date = s.now().Format("2006-01-02")
	}
	if p.Mode == "" {
		p.Mode = ModeCash
	}
	if err := s.repo.Create(ctx, p, s.allowOverpay); err != nil {
		return Payment{}, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdatePaymentRequest) (Payment, error) {
	if req.AmountPaid != nil {
		return Payment{}, fmt.Errorf("%w: amount_paid of a recorded payment is immutable", httpx.ErrValidation)
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return Payment{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
