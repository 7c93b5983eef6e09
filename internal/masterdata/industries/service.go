package industries

import (
	"context"

	"github.com/biztime/biztime/internal/masterdata"
)

// Service implements the industry and association operations.
type Service struct {
	repo         Repository
	associations AssociationRepository
}

func NewService(repo Repository, associations AssociationRepository) *Service {
	return &Service{repo: repo, associations: associations}
}

// Create stores the industry with its code as given.
func (s *Service) Create(ctx context.Context, req CreateIndustryRequest) (masterdata.Industry, error) {
	return s.repo.Create(ctx, masterdata.Industry{Code: req.Code, Industry: req.Industry})
}

func (s *Service) ListWithCompanies(ctx context.Context) (masterdata.IndustryGroups, error) {
	return s.repo.ListWithCompanies(ctx)
}

// Associate links a company to an industry. Neither code is normalized.
func (s *Service) Associate(ctx context.Context, req AssociateRequest) (masterdata.Association, error) {
	return s.associations.Create(ctx, req.CompanyCode, req.IndustryCode)
}
