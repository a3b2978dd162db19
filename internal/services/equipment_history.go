package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/types"
	"inventory-system/pkg/utils"

	"go.uber.org/zap"
)

type EquipmentHistoryService struct {
	historyRepo repositories.EquipmentHistoryRepositoryInterface
	logger      *zap.Logger
}

func NewEquipmentHistoryService(historyRepo repositories.EquipmentHistoryRepositoryInterface, logger *zap.Logger) *EquipmentHistoryService {
	return &EquipmentHistoryService{historyRepo: historyRepo, logger: logger}
}

// GetEquipmentHistory - журнал одной единицы, от свежих записей к старым.
func (s *EquipmentHistoryService) GetEquipmentHistory(ctx context.Context, equipmentID uint64) ([]dto.EquipmentHistoryDTO, error) {
	items, err := s.historyRepo.FindByEquipmentID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	history := make([]dto.EquipmentHistoryDTO, 0, len(items))
	for i := range items {
		history = append(history, toHistoryDTO(&items[i]))
	}
	return history, nil
}

// GetHistory - сквозной журнал с фильтрами и пагинацией.
func (s *EquipmentHistoryService) GetHistory(ctx context.Context, filter types.Filter, companyID *uint64) ([]map[string]interface{}, uint64, error) {
	return s.historyRepo.GetHistory(ctx, filter, companyID)
}

func toHistoryDTO(item *repositories.EquipmentHistoryItem) dto.EquipmentHistoryDTO {
	result := dto.EquipmentHistoryDTO{
		ID:            item.ID,
		EquipmentID:   utils.Uint64Ptr(item.EquipmentID),
		EquipmentName: item.EquipmentName,
		Label:         item.Label,
		Action:        item.Action,
		Comment:       item.Comment.String,
		OccurredAt:    utils.FormatTime(item.OccurredAt),
	}
	if item.TypeID.Valid {
		result.Type = &dto.ShortEquipmentTypeDTO{ID: item.TypeID.Uint64, Name: item.TypeName}
	}
	if item.PrevStatusID.Valid {
		result.PrevStatus = &dto.ShortEquipmentStatusDTO{ID: item.PrevStatusID.Uint64, Name: item.PrevStatusName}
	}
	if item.NewStatusID.Valid {
		result.NewStatus = &dto.ShortEquipmentStatusDTO{ID: item.NewStatusID.Uint64, Name: item.NewStatusName}
	}
	if item.PrevEmployeeID.Valid {
		result.PrevEmployee = &dto.ShortEmployeeDTO{ID: item.PrevEmployeeID.Uint64, FullName: item.PrevEmployeeName}
	}
	if item.NewEmployeeID.Valid {
		result.NewEmployee = &dto.ShortEmployeeDTO{ID: item.NewEmployeeID.Uint64, FullName: item.NewEmployeeName}
	}
	if item.ActorEmployeeID.Valid {
		result.Actor = &dto.ShortEmployeeDTO{ID: item.ActorEmployeeID.Uint64, FullName: item.ActorName}
	}
	if item.CompanyID.Valid {
		result.Company = &dto.ShortCompanyDTO{ID: item.CompanyID.Uint64, Name: item.CompanyName}
	}
	if item.DepartmentID.Valid {
		result.Department = &dto.ShortDepartmentDTO{ID: item.DepartmentID.Uint64, Name: item.DepartmentName}
	}
	return result
}
