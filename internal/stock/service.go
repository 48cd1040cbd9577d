package stock

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

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Entry, error) {
	return s.repo.Get(ctx, id)
}

// Create records a stock receipt. The id defaults to a fresh uuid and the
// date to today when omitted.
func (s *Service) Create(ctx context.Context, req CreateEntryRequest) (Entry, error) {
	if req.Quantity <= 0 {
		return Entry{}, fmt.Errorf("%w: quantity must be positive", httpx.ErrValidation)
	}
	if strings.TrimSpace(req.ProductID) == "" {
		return Entry{}, fmt.Errorf("%w: product_id is required", httpx.ErrValidation)
	}
	e := Entry{
		ID:         req.ID,
		ProductID:  req.ProductID,
		SupplierID: req.SupplierID,
		Quantity:   req.Quantity,
		Date:       req.Date,
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Date == "" {
		e.Date = s.now().Format("2006-01-02")
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return Entry{}, err
	}
	return s.repo.Get(ctx, e.ID)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateEntryRequest) (Entry, error) {
	if req.Quantity != nil {
		return Entry{}, fmt.Errorf("%w: quantity of a recorded receipt is immutable", httpx.ErrValidation)
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return Entry{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id, s.allowNeg)
}
