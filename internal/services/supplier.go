package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"

	"go.uber.org/zap"
)

type SupplierService struct {
	supplierRepo repositories.SupplierRepositoryInterface
	logger       *zap.Logger
}

func NewSupplierService(supplierRepo repositories.SupplierRepositoryInterface, logger *zap.Logger) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo, logger: logger}
}

func (s *SupplierService) GetSuppliers(ctx context.Context, limit, offset uint64, search string) ([]dto.SupplierDTO, uint64, error) {
	return s.supplierRepo.GetSuppliers(ctx, limit, offset, search)
}

func (s *SupplierService) FindSupplier(ctx context.Context, id uint64) (*dto.SupplierDTO, error) {
	return s.supplierRepo.FindSupplier(ctx, id)
}

func (s *SupplierService) CreateSupplier(ctx context.Context, payload dto.CreateSupplierDTO) (*dto.SupplierDTO, error) {
	return s.supplierRepo.CreateSupplier(ctx, payload)
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, id uint64, payload dto.UpdateSupplierDTO) (*dto.SupplierDTO, error) {
	return s.supplierRepo.UpdateSupplier(ctx, id, payload)
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, id uint64) error {
	return s.supplierRepo.DeleteSupplier(ctx, id)
}
