package customers

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

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Customer, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id string) (Customer, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (Customer, error) {
	if strings.TrimSpace(req.ID) == "" {
		return Customer{}, fmt.Errorf("%w: cust_id is required", httpx.ErrValidation)
	}
	if strings.TrimSpace(req.Name) == "" {
		return Customer{}, fmt.Errorf("%w: name is required", httpx.ErrValidation)
	}
	c := Customer{ID: req.ID, Name: req.Name, Email: req.Email, Phone: req.Phone, City: req.City}
	if err := s.repo.Create(ctx, c); err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateCustomerRequest) (Customer, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return Customer{}, fmt.Errorf("%w: name must not be blank", httpx.ErrValidation)
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return Customer{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
