package services

import (
	"context"
	"fmt"
	"time"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type MaintenanceService struct {
	storage         *pgxpool.Pool
	maintenanceRepo repositories.MaintenanceRepositoryInterface
	statusRepo      repositories.MaintenanceStatusRepositoryInterface
	equipmentRepo   repositories.EquipmentRepositoryInterface
	employeeRepo    repositories.EmployeeRepositoryInterface
	logger          *zap.Logger
}

func NewMaintenanceService(
	storage *pgxpool.Pool,
	maintenanceRepo repositories.MaintenanceRepositoryInterface,
	statusRepo repositories.MaintenanceStatusRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	employeeRepo repositories.EmployeeRepositoryInterface,
	logger *zap.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		storage:         storage,
		maintenanceRepo: maintenanceRepo,
		statusRepo:      statusRepo,
		equipmentRepo:   equipmentRepo,
		employeeRepo:    employeeRepo,
		logger:          logger,
	}
}

func (s *MaintenanceService) GetMaintenanceRequests(ctx context.Context, limit, offset uint64, statusID, companyID *uint64) ([]dto.MaintenanceRequestDTO, uint64, error) {
	requests, total, err := s.maintenanceRepo.GetMaintenanceRequests(ctx, limit, offset, statusID, companyID)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.MaintenanceRequestDTO, 0, len(requests))
	for i := range requests {
		result = append(result, toMaintenanceDTO(&requests[i]))
	}
	return result, total, nil
}

func (s *MaintenanceService) FindMaintenanceRequest(ctx context.Context, id uint64) (*dto.MaintenanceRequestDTO, error) {
	request, err := s.maintenanceRepo.FindMaintenanceRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	requestDTO := toMaintenanceDTO(request)
	return &requestDTO, nil
}

func (s *MaintenanceService) GetMaintenanceLogs(ctx context.Context, requestID uint64) ([]dto.MaintenanceLogDTO, error) {
	logs, err := s.maintenanceRepo.FindLogsByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.MaintenanceLogDTO, 0, len(logs))
	for _, l := range logs {
		entry := dto.MaintenanceLogDTO{
			ID:          l.ID,
			RequestID:   l.MaintenanceID,
			Action:      l.Action,
			StatusCode:  l.StatusName.String,
			Description: l.Detail,
			OccurredAt:  utils.FormatTime(l.OccurredAt),
		}
		if l.ActorName.Valid {
			entry.Actor = &dto.ShortEmployeeDTO{FullName: l.ActorName.String}
		}
		result = append(result, entry)
	}
	return result, nil
}

// CreateMaintenanceRequest заводит заявку и пишет первую запись ее журнала.
func (s *MaintenanceService) CreateMaintenanceRequest(ctx context.Context, payload dto.CreateMaintenanceRequestDTO) (*dto.MaintenanceRequestDTO, error) {
	actorID, err := utils.GetEmployeeIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	equipment, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID)
	if err != nil {
		return nil, err
	}

	var statusID uint64
	var statusName string
	if payload.StatusID != nil {
		status, err := s.statusRepo.FindMaintenanceStatus(ctx, *payload.StatusID)
		if err != nil {
			return nil, err
		}
		statusID, statusName = status.ID, status.Name
	} else {
		status, err := s.statusRepo.FindByCode(ctx, constants.MaintenanceStatusPending)
		if err != nil {
			return nil, err
		}
		statusID, statusName = status.ID, status.Name
	}

	request := &entities.MaintenanceRequest{
		EquipmentID: payload.EquipmentID,
		StatusID:    statusID,
		Description: null.StringFrom(payload.Description),
	}
	if payload.Cost != nil {
		request.Cost = null.Int64From(*payload.Cost)
	}

	var createdID uint64
	err = repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		id, err := s.maintenanceRepo.CreateInTx(ctx, tx, request)
		if err != nil {
			return err
		}
		createdID = id

		logEntry := s.buildLog(ctx, id, equipment, statusName, constants.MaintenanceActionCreated, payload.Description, actorID)
		return s.maintenanceRepo.CreateLogInTx(ctx, tx, logEntry)
	})
	if err != nil {
		s.logger.Error("Ошибка при создании заявки на обслуживание", zap.Error(err))
		return nil, err
	}
	return s.FindMaintenanceRequest(ctx, createdID)
}

// UpdateMaintenanceRequest правит заявку под блокировкой. Смена статуса и
// правка описания дают разные записи журнала.
func (s *MaintenanceService) UpdateMaintenanceRequest(ctx context.Context, id uint64, payload dto.UpdateMaintenanceRequestDTO) (*dto.MaintenanceRequestDTO, error) {
	actorID, err := utils.GetEmployeeIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	err = repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		prev, err := s.maintenanceRepo.FindForUpdateInTx(ctx, tx, id)
		if err != nil {
			return err
		}

		equipment, err := s.equipmentRepo.FindEquipment(ctx, prev.EquipmentID)
		if err != nil {
			return err
		}

		next := *prev
		if payload.StatusID != nil {
			next.StatusID = *payload.StatusID
		}
		if payload.Description != nil {
			next.Description = null.StringFrom(*payload.Description)
		}
		if payload.Cost != nil {
			next.Cost = null.Int64From(*payload.Cost)
		}

		if err := s.maintenanceRepo.UpdateInTx(ctx, tx, &next); err != nil {
			return err
		}

		if next.StatusID != prev.StatusID {
			status, err := s.statusRepo.FindMaintenanceStatus(ctx, next.StatusID)
			if err != nil {
				return err
			}
			detail := fmt.Sprintf("Статус заявки изменен на %q", status.Name)
			logEntry := s.buildLog(ctx, id, equipment, status.Name, constants.MaintenanceActionStatusChanged, detail, actorID)
			if err := s.maintenanceRepo.CreateLogInTx(ctx, tx, logEntry); err != nil {
				return err
			}
		}
		if next.Description != prev.Description || next.Cost != prev.Cost {
			logEntry := s.buildLog(ctx, id, equipment, "", constants.MaintenanceActionEdited, next.Description.String, actorID)
			if err := s.maintenanceRepo.CreateLogInTx(ctx, tx, logEntry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.FindMaintenanceRequest(ctx, id)
}

func (s *MaintenanceService) DeleteMaintenanceRequest(ctx context.Context, id uint64) error {
	return s.maintenanceRepo.DeleteMaintenanceRequest(ctx, id)
}

// buildLog делает снимок заявки для журнала: имена вместо внешних ключей,
// чтобы записи переживали удаление справочников.
func (s *MaintenanceService) buildLog(ctx context.Context, requestID uint64, equipment *entities.Equipment, statusName, action, detail string, actorID uint64) *entities.MaintenanceLog {
	logEntry := &entities.MaintenanceLog{
		MaintenanceID: requestID,
		EquipmentID:   null.Uint64From(equipment.ID),
		Label:         equipment.Label,
		EquipmentName: null.StringFrom(equipment.Name),
		Action:        action,
		Detail:        detail,
		OccurredAt:    time.Now().UTC(),
	}
	if statusName != "" {
		logEntry.StatusName = null.StringFrom(statusName)
	}
	if actor, err := s.employeeRepo.FindEmployee(ctx, actorID); err == nil {
		logEntry.ActorName = null.StringFrom(actor.FullName())
	}
	return logEntry
}

func toMaintenanceDTO(m *entities.MaintenanceRequest) dto.MaintenanceRequestDTO {
	result := dto.MaintenanceRequestDTO{
		ID:          m.ID,
		Description: m.Description.String,
		CreatedAt:   utils.FormatTimePtr(m.CreatedAt),
		UpdatedAt:   utils.FormatTimePtr(m.UpdatedAt),
	}
	if m.Cost.Valid {
		cost := m.Cost.Int64
		result.Cost = &cost
	}
	if m.Equipment != nil {
		result.Equipment = dto.ShortEquipmentDTO{
			ID:    m.Equipment.ID,
			Name:  m.Equipment.Name,
			Label: m.Equipment.Label.String,
		}
	}
	if m.Status != nil {
		result.Status = &dto.ShortMaintenanceStatusDTO{ID: m.Status.ID, Code: m.Status.Code, Name: m.Status.Name}
	}
	return result
}
