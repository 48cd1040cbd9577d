package products

import (
	"context"
	"fmt"
	"strings"

	"github.com/minimart-systems/minimart/internal/platform/httpx"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	if strings.TrimSpace(req.ID) == "" {
		return Product{}, fmt.Errorf("%w: product_id is required", httpx.ErrValidation)
	}
	if strings.TrimSpace(req.Name) == "" {
		return Product{}, fmt.Errorf("%w: name is required", httpx.ErrValidation)
	}
	p := Product{
		ID:            req.ID,
		Name:          req.Name,
		Price:         req.Price,
		QuantityStock: req.QuantityStock,
		SupplierID:    req.SupplierID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Product{}, err
	}
	// Re-read to resolve the supplier name.
	return s.repo.Get(ctx, p.ID)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateProductRequest) (Product, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return Product{}, fmt.Errorf("%w: name must not be blank", httpx.ErrValidation)
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return Product{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
