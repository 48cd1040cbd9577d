package sales

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
	AllowNegativeStock bool
}

type Service struct {
	repo     *Repository
	allowNeg bool
	now      func() time.Time
}

func NewService(repo *Repository, cfg ServiceConfig) *Service {
	return &Service{repo: repo, allowNeg: cfg.AllowNegativeStock, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Sale, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Sale, error) {
	return s.repo.Get(ctx, id)
}

// Create records a sale. The invoice reference is optional; id and date
// default to a fresh uuid and today.
func (s *Service) Create(ctx context.Context, req CreateSaleRequest) (Sale, error) {
	if req.QuantitySold <= 0 {
		return Sale{}, fmt.Errorf("%w: quantity_sold must be positive", httpx.ErrValidation)
	}
	if strings.TrimSpace(req.ProductID) == "" {
		return Sale{}, fmt.Errorf("%w: product_id is required", httpx.ErrValidation)
	}
	sale := Sale{
		ID:           req.ID,
		ProductID:    req.ProductID,
		InvoiceID:    req.InvoiceID,
		QuantitySold: req.QuantitySold,
		PriceTotal:   req.PriceTotal,
		Date:         req.Date,
	}
	if sale.ID == "" {
		sale.ID = uuid.NewString()
	}
	if sale.Date == "" {
		sale.Date = s.now().Format("2006-01-02")
	}
	if err := s.repo.Create(ctx, sale, s.allowNeg); err != nil {
		return Sale{}, err
	}
	return sale, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateSaleRequest) (Sale, error) {
	if req.QuantitySold != nil {
		return Sale{}, fmt.Errorf("%w: quantity_sold of a recorded sale is immutable", httpx.ErrValidation)
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return Sale{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
