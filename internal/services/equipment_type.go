package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"

	"go.uber.org/zap"
)

type EquipmentTypeService struct {
	typeRepo repositories.EquipmentTypeRepositoryInterface
	logger   *zap.Logger
}

func NewEquipmentTypeService(typeRepo repositories.EquipmentTypeRepositoryInterface, logger *zap.Logger) *EquipmentTypeService {
	return &EquipmentTypeService{typeRepo: typeRepo, logger: logger}
}

func (s *EquipmentTypeService) GetEquipmentTypes(ctx context.Context, limit, offset uint64, search string) ([]dto.EquipmentTypeDTO, uint64, error) {
	return s.typeRepo.GetEquipmentTypes(ctx, limit, offset, search)
}

func (s *EquipmentTypeService) FindEquipmentType(ctx context.Context, id uint64) (*dto.EquipmentTypeDTO, error) {
	return s.typeRepo.FindEquipmentType(ctx, id)
}

func (s *EquipmentTypeService) CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error) {
	return s.typeRepo.CreateEquipmentType(ctx, payload)
}

func (s *EquipmentTypeService) UpdateEquipmentType(ctx context.Context, id uint64, payload dto.UpdateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error) {
	return s.typeRepo.UpdateEquipmentType(ctx, id, payload)
}

func (s *EquipmentTypeService) DeleteEquipmentType(ctx context.Context, id uint64) error {
	return s.typeRepo.DeleteEquipmentType(ctx, id)
}

func (s *EquipmentTypeService) GetTypeAttributes(ctx context.Context, typeID uint64) ([]dto.TypeAttributeDTO, error) {
	if _, err := s.typeRepo.FindEquipmentType(ctx, typeID); err != nil {
		return nil, err
	}
	return s.typeRepo.GetTypeAttributes(ctx, typeID)
}

func (s *EquipmentTypeService) AddTypeAttribute(ctx context.Context, typeID uint64, payload dto.UpsertTypeAttributeDTO) (*dto.TypeAttributeDTO, error) {
	return s.typeRepo.AddTypeAttribute(ctx, typeID, payload)
}

func (s *EquipmentTypeService) DeleteTypeAttribute(ctx context.Context, typeID, attributeID uint64) error {
	return s.typeRepo.DeleteTypeAttribute(ctx, typeID, attributeID)
}
