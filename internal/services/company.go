package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"

	"go.uber.org/zap"
)

type CompanyService struct {
	companyRepo repositories.CompanyRepositoryInterface
	logger      *zap.Logger
}

func NewCompanyService(companyRepo repositories.CompanyRepositoryInterface, logger *zap.Logger) *CompanyService {
	return &CompanyService{companyRepo: companyRepo, logger: logger}
}

func (s *CompanyService) GetCompanies(ctx context.Context, limit, offset uint64, search string) ([]dto.CompanyDTO, uint64, error) {
	return s.companyRepo.GetCompanies(ctx, limit, offset, search)
}

func (s *CompanyService) FindCompany(ctx context.Context, id uint64) (*dto.CompanyDTO, error) {
	return s.companyRepo.FindCompany(ctx, id)
}

func (s *CompanyService) CreateCompany(ctx context.Context, payload dto.CreateCompanyDTO) (*dto.CompanyDTO, error) {
	company, err := s.companyRepo.CreateCompany(ctx, payload)
	if err != nil {
		s.logger.Error("Ошибка при создании компании", zap.Error(err))
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) UpdateCompany(ctx context.Context, id uint64, payload dto.UpdateCompanyDTO) (*dto.CompanyDTO, error) {
	return s.companyRepo.UpdateCompany(ctx, id, payload)
}

func (s *CompanyService) DeleteCompany(ctx context.Context, id uint64) error {
	return s.companyRepo.DeleteCompany(ctx, id)
}
