package companies

import (
	"context"
	"strings"

	"github.com/biztime/biztime/internal/masterdata"
	"github.com/biztime/biztime/internal/shared"
	"github.com/biztime/biztime/internal/slug"
)

// Service implements the company operations on top of a Repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]masterdata.Company, error) {
	return s.repo.List(ctx)
}

// Detail looks the company up by its stored code; the code is not normalized.
func (s *Service) Detail(ctx context.Context, code string) (masterdata.CompanyDetail, error) {
	return s.repo.Detail(ctx, code)
}

// Create normalizes the requested code to its slug and inserts the company.
func (s *Service) Create(ctx context.Context, req CreateCompanyRequest) (masterdata.Company, error) {
	code := slug.Normalize(req.Code)
	if code == "" {
		return masterdata.Company{}, shared.NewError(shared.ErrValidation, "code must contain at least one letter or digit", nil)
	}
	if strings.TrimSpace(req.Name) == "" {
		return masterdata.Company{}, shared.NewError(shared.ErrValidation, "name is required", nil)
	}
	return s.repo.Create(ctx, masterdata.Company{
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
	})
}

// Update matches code exactly against the stored primary key.
func (s *Service) Update(ctx context.Context, code string, req UpdateCompanyRequest) (masterdata.Company, error) {
	if strings.TrimSpace(req.Name) == "" {
		return masterdata.Company{}, shared.NewError(shared.ErrValidation, "name is required", nil)
	}
	return s.repo.Update(ctx, masterdata.Company{
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
	})
}

// Delete matches code exactly against the stored primary key.
func (s *Service) Delete(ctx context.Context, code string) error {
	return s.repo.Delete(ctx, code)
}
