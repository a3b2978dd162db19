package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"

	"go.uber.org/zap"
)

type MaintenanceStatusService struct {
	statusRepo repositories.MaintenanceStatusRepositoryInterface
	logger     *zap.Logger
}

func NewMaintenanceStatusService(statusRepo repositories.MaintenanceStatusRepositoryInterface, logger *zap.Logger) *MaintenanceStatusService {
	return &MaintenanceStatusService{statusRepo: statusRepo, logger: logger}
}

func (s *MaintenanceStatusService) GetMaintenanceStatuses(ctx context.Context, limit, offset uint64) ([]dto.MaintenanceStatusDTO, uint64, error) {
	return s.statusRepo.GetMaintenanceStatuses(ctx, limit, offset)
}

func (s *MaintenanceStatusService) FindMaintenanceStatus(ctx context.Context, id uint64) (*dto.MaintenanceStatusDTO, error) {
	return s.statusRepo.FindMaintenanceStatus(ctx, id)
}

func (s *MaintenanceStatusService) CreateMaintenanceStatus(ctx context.Context, payload dto.CreateMaintenanceStatusDTO) (*dto.MaintenanceStatusDTO, error) {
	status, err := s.statusRepo.CreateMaintenanceStatus(ctx, payload)
	if err != nil {
		s.logger.Error("не удалось создать статус заявки", zap.Error(err))
		return nil, err
	}
	return status, nil
}

func (s *MaintenanceStatusService) UpdateMaintenanceStatus(ctx context.Context, id uint64, payload dto.UpdateMaintenanceStatusDTO) (*dto.MaintenanceStatusDTO, error) {
	return s.statusRepo.UpdateMaintenanceStatus(ctx, id, payload)
}

func (s *MaintenanceStatusService) DeleteMaintenanceStatus(ctx context.Context, id uint64) error {
	return s.statusRepo.DeleteMaintenanceStatus(ctx, id)
}
