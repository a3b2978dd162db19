package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"

	"go.uber.org/zap"
)

type BrandService struct {
	brandRepo repositories.BrandRepositoryInterface
	logger    *zap.Logger
}

func NewBrandService(brandRepo repositories.BrandRepositoryInterface, logger *zap.Logger) *BrandService {
	return &BrandService{brandRepo: brandRepo, logger: logger}
}

func (s *BrandService) GetBrands(ctx context.Context, limit, offset uint64, search string) ([]dto.BrandDTO, uint64, error) {
	return s.brandRepo.GetBrands(ctx, limit, offset, search)
}

func (s *BrandService) FindBrand(ctx context.Context, id uint64) (*dto.BrandDTO, error) {
	return s.brandRepo.FindBrand(ctx, id)
}

func (s *BrandService) CreateBrand(ctx context.Context, payload dto.CreateBrandDTO) (*dto.BrandDTO, error) {
	return s.brandRepo.CreateBrand(ctx, payload)
}

func (s *BrandService) UpdateBrand(ctx context.Context, id uint64, payload dto.UpdateBrandDTO) (*dto.BrandDTO, error) {
	return s.brandRepo.UpdateBrand(ctx, id, payload)
}

func (s *BrandService) DeleteBrand(ctx context.Context, id uint64) error {
	return s.brandRepo.DeleteBrand(ctx, id)
}
