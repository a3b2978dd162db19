package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"

	"go.uber.org/zap"
)

type EquipmentStatusService struct {
	statusRepo repositories.EquipmentStatusRepositoryInterface
	logger     *zap.Logger
}

func NewEquipmentStatusService(statusRepo repositories.EquipmentStatusRepositoryInterface, logger *zap.Logger) *EquipmentStatusService {
	return &EquipmentStatusService{statusRepo: statusRepo, logger: logger}
}

func (s *EquipmentStatusService) GetEquipmentStatuses(ctx context.Context, limit, offset uint64, search string) ([]dto.EquipmentStatusDTO, uint64, error) {
	return s.statusRepo.GetEquipmentStatuses(ctx, limit, offset, search)
}

func (s *EquipmentStatusService) FindEquipmentStatus(ctx context.Context, id uint64) (*dto.EquipmentStatusDTO, error) {
	return s.statusRepo.FindEquipmentStatus(ctx, id)
}

func (s *EquipmentStatusService) CreateEquipmentStatus(ctx context.Context, payload dto.CreateEquipmentStatusDTO) (*dto.EquipmentStatusDTO, error) {
	return s.statusRepo.CreateEquipmentStatus(ctx, payload)
}

func (s *EquipmentStatusService) UpdateEquipmentStatus(ctx context.Context, id uint64, payload dto.UpdateEquipmentStatusDTO) (*dto.EquipmentStatusDTO, error) {
	return s.statusRepo.UpdateEquipmentStatus(ctx, id, payload)
}

func (s *EquipmentStatusService) DeleteEquipmentStatus(ctx context.Context, id uint64) error {
	return s.statusRepo.DeleteEquipmentStatus(ctx, id)
}
