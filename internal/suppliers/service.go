package suppliers

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

func (s *Service) List(ctx context.Context) ([]Supplier, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Supplier, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateSupplierRequest) (Supplier, error) {
	if strings.TrimSpace(req.ID) == "" {
		return Supplier{}, fmt.Errorf("%w: supplier_id is required", httpx.ErrValidation)
	}
	if strings.TrimSpace(req.Name) == "" {
		return Supplier{}, fmt.Errorf("%w: name is required", httpx.ErrValidation)
	}
	sup := Supplier{ID: req.ID, Name: req.Name, Email: req.Email, Phone: req.Phone, City: req.City}
	if err := s.repo.Create(ctx, sup); err != nil {
		return Supplier{}, err
	}
	return sup, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateSupplierRequest) (Supplier, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return Supplier{}, fmt.Errorf("%w: name must not be blank", httpx.ErrValidation)
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return Supplier{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
