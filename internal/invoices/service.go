package invoices

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minimart-systems/minimart/internal/platform/httpx"
)

type Service struct {
	repo *Repository
	now  func() time.Time
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Invoice, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Invoice, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateInvoiceRequest) (Invoice, error) {
	if strings.TrimSpace(req.CustID) == "" {
		return Invoice{}, fmt.Errorf("%w: cust_id is required", httpx.ErrValidation)
	}
	inv := Invoice{ID: req.ID, CustID: req.CustID, Date: req.Date, TotalAmt: req.TotalAmt}
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	if inv.Date == "" {
		inv.Date = s.now().Format("2006-01-02")
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return Invoice{}, err
	}
	return inv, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateInvoiceRequest) (Invoice, error) {
	if err := s.repo.Update(ctx, id, req); err != nil {
		return Invoice{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
