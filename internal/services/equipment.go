package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
	"inventory-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const dashboardCacheKeyAll = "dashboard:summary:all"

func dashboardCacheKey(companyID *uint64) string {
	if companyID == nil {
		return dashboardCacheKeyAll
	}
	return fmt.Sprintf("dashboard:summary:%d", *companyID)
}

type EquipmentService struct {
	storage       *pgxpool.Pool
	equipmentRepo repositories.EquipmentRepositoryInterface
	historyRepo   repositories.EquipmentHistoryRepositoryInterface
	employeeRepo  repositories.EmployeeRepositoryInterface
	statusRepo    repositories.EquipmentStatusRepositoryInterface
	cacheRepo     repositories.CacheRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	storage *pgxpool.Pool,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	historyRepo repositories.EquipmentHistoryRepositoryInterface,
	employeeRepo repositories.EmployeeRepositoryInterface,
	statusRepo repositories.EquipmentStatusRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		storage:       storage,
		equipmentRepo: equipmentRepo,
		historyRepo:   historyRepo,
		employeeRepo:  employeeRepo,
		statusRepo:    statusRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter, companyID *uint64) ([]map[string]interface{}, uint64, error) {
	return s.equipmentRepo.GetEquipments(ctx, filter, companyID)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	equipmentDTO := toEquipmentDTO(equipment)
	return &equipmentDTO, nil
}

// CreateEquipment создает единицу и сразу пишет первую запись журнала.
// Статус по умолчанию: ASSIGNED, если задан ответственный, иначе IN_STORAGE.
// Компания и отдел, если не заданы явно, наследуются от ответственного.
func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	actorID, err := utils.GetEmployeeIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	equipment := &entities.Equipment{
		Name:    payload.Name,
		BrandID: payload.BrandID,
		TypeID:  payload.TypeID,
	}
	if payload.Label != nil {
		equipment.Label = null.StringFrom(*payload.Label)
	}
	if payload.EmployeeID != nil {
		equipment.EmployeeID = null.Uint64From(*payload.EmployeeID)
	}
	if payload.SupplierID != nil {
		equipment.SupplierID = null.Uint64From(*payload.SupplierID)
	}
	if payload.CompanyID != nil {
		equipment.CompanyID = null.Uint64From(*payload.CompanyID)
	}
	if payload.DepartmentID != nil {
		equipment.DepartmentID = null.Uint64From(*payload.DepartmentID)
	}

	if payload.StatusID != nil {
		equipment.StatusID = null.Uint64From(*payload.StatusID)
	} else {
		code := constants.EquipmentStatusInStorage
		if equipment.EmployeeID.Valid {
			code = constants.EquipmentStatusAssigned
		}
		status, err := s.statusRepo.FindByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		equipment.StatusID = null.Uint64From(status.ID)
	}

	var createdID uint64
	err = repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		if equipment.EmployeeID.Valid {
			responsible, err := s.employeeRepo.FindEmployeeInTx(ctx, tx, equipment.EmployeeID.Uint64)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return apperrors.ErrReferenceNotFound
				}
				return err
			}
			if !equipment.CompanyID.Valid {
				equipment.CompanyID = null.Uint64From(responsible.CompanyID)
			}
			if !equipment.DepartmentID.Valid {
				equipment.DepartmentID = null.Uint64From(responsible.DepartmentID)
			}
		}

		id, err := s.equipmentRepo.CreateEquipmentInTx(ctx, tx, equipment)
		if err != nil {
			return err
		}
		createdID = id
		equipment.ID = id

		entry := BuildHistoryEntry(nil, equipment, &actorID, time.Now().UTC(), constants.HistoryActionCreated, "")
		return s.historyRepo.CreateInTx(ctx, tx, &entry)
	})
	if err != nil {
		s.logger.Error("Ошибка при создании оборудования", zap.Error(err))
		return nil, err
	}

	s.invalidateDashboard(ctx, equipment.CompanyID)
	s.logger.Info("Оборудование создано",
		zap.Uint64("equipment_id", createdID),
		zap.Uint64("actor_id", actorID),
	)
	return s.FindEquipment(ctx, createdID)
}

// UpdateEquipment правит единицу под блокировкой строки. Запись журнала
// появляется только если изменился статус или ответственный.
func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	actorID, err := utils.GetEmployeeIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	err = repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		prev, err := s.equipmentRepo.FindForUpdateInTx(ctx, tx, id)
		if err != nil {
			return err
		}

		next := *prev
		if payload.Name != nil {
			next.Name = *payload.Name
		}
		if payload.Label != nil {
			next.Label = null.StringFrom(*payload.Label)
		}
		if payload.BrandID != nil {
			next.BrandID = *payload.BrandID
		}
		if payload.TypeID != nil {
			next.TypeID = *payload.TypeID
		}
		if payload.StatusID != nil {
			next.StatusID = null.Uint64From(*payload.StatusID)
		}
		if payload.ClearEmployee {
			next.EmployeeID = null.Uint64{}
		} else if payload.EmployeeID != nil {
			next.EmployeeID = null.Uint64From(*payload.EmployeeID)
		}
		if payload.SupplierID != nil {
			next.SupplierID = null.Uint64From(*payload.SupplierID)
		}
		if payload.CompanyID != nil {
			next.CompanyID = null.Uint64From(*payload.CompanyID)
		}
		if payload.DepartmentID != nil {
			next.DepartmentID = null.Uint64From(*payload.DepartmentID)
		}

		// Смена ответственного без явного статуса сама меняет статус:
		// появился ответственный - "выдано", снят - "на складе".
		if payload.StatusID == nil && next.EmployeeID != prev.EmployeeID {
			code := constants.EquipmentStatusInStorage
			if next.EmployeeID.Valid {
				code = constants.EquipmentStatusAssigned
			}
			status, err := s.statusRepo.FindByCode(ctx, code)
			if err != nil {
				return err
			}
			next.StatusID = null.Uint64From(status.ID)
		}

		// Вывод компании/отдела: свои значения, иначе от нового ответственного,
		// иначе от прежнего.
		if !next.CompanyID.Valid || !next.DepartmentID.Valid {
			var donor *entities.Employee
			if next.EmployeeID.Valid {
				donor, err = s.employeeRepo.FindEmployeeInTx(ctx, tx, next.EmployeeID.Uint64)
				if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
					return err
				}
			}
			if donor == nil && prev.EmployeeID.Valid {
				donor, err = s.employeeRepo.FindEmployeeInTx(ctx, tx, prev.EmployeeID.Uint64)
				if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
					return err
				}
			}
			if donor != nil {
				if !next.CompanyID.Valid {
					next.CompanyID = null.Uint64From(donor.CompanyID)
				}
				if !next.DepartmentID.Valid {
					next.DepartmentID = null.Uint64From(donor.DepartmentID)
				}
			}
		}

		if err := s.equipmentRepo.UpdateEquipmentInTx(ctx, tx, &next); err != nil {
			return err
		}

		changes := DetectEquipmentChanges(prev, &next)
		if !changes.Any() {
			return nil
		}

		entry := BuildHistoryEntry(prev, &next, &actorID, time.Now().UTC(), constants.HistoryActionUpdated, "")
		if err := s.historyRepo.CreateInTx(ctx, tx, &entry); err != nil {
			return err
		}
		s.invalidateDashboard(ctx, next.CompanyID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.FindEquipment(ctx, id)
}

// BulkAssign выдает выбранное оборудование одному сотруднику. Берутся только
// свободные единицы (на складе, без ответственного); если хоть одна из
// выбранных уже ушла, операция целиком откатывается со списком выбывших id.
func (s *EquipmentService) BulkAssign(ctx context.Context, payload dto.BulkAssignDTO, companyID *uint64) (uint64, error) {
	actorID, err := utils.GetEmployeeIDFromCtx(ctx)
	if err != nil {
		return 0, err
	}

	ids := uniqueIDs(payload.EquipmentIDs)
	if len(ids) == 0 {
		return 0, apperrors.NewInvalidInputError("не выбрано ни одной единицы оборудования")
	}

	inStorage, err := s.statusRepo.FindByCode(ctx, constants.EquipmentStatusInStorage)
	if err != nil {
		return 0, err
	}
	assigned, err := s.statusRepo.FindByCode(ctx, constants.EquipmentStatusAssigned)
	if err != nil {
		return 0, err
	}

	err = repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		employee, err := s.employeeRepo.FindEmployeeInTx(ctx, tx, payload.EmployeeID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.ErrReferenceNotFound
			}
			return err
		}
		if !employee.Active {
			return apperrors.NewInvalidInputError("сотрудник %s неактивен, выдача невозможна", employee.FullName())
		}

		locked, err := s.equipmentRepo.LockAvailableInTx(ctx, tx, ids, inStorage.ID, companyID)
		if err != nil {
			return err
		}
		if missing := missingIDs(ids, locked); len(missing) > 0 {
			return apperrors.NewStaleSelectionError(missing)
		}

		if err := s.equipmentRepo.BulkAssignInTx(ctx, tx, ids, employee, assigned.ID); err != nil {
			return err
		}

		occurredAt := time.Now().UTC()
		entries := make([]entities.EquipmentHistory, 0, len(locked))
		for i := range locked {
			prev := locked[i]
			next := prev
			next.EmployeeID = null.Uint64From(employee.ID)
			next.StatusID = null.Uint64From(assigned.ID)
			if !next.CompanyID.Valid {
				next.CompanyID = null.Uint64From(employee.CompanyID)
			}
			if !next.DepartmentID.Valid {
				next.DepartmentID = null.Uint64From(employee.DepartmentID)
			}
			entries = append(entries, BuildHistoryEntry(&prev, &next, &actorID, occurredAt, constants.HistoryActionBulkAssign, ""))
		}
		return s.historyRepo.CreateBulkInTx(ctx, tx, entries)
	})
	if err != nil {
		return 0, err
	}

	s.invalidateDashboard(ctx, null.Uint64{})
	s.logger.Info("Массовая выдача оборудования",
		zap.Uint64("employee_id", payload.EmployeeID),
		zap.Int("count", len(ids)),
		zap.Uint64("actor_id", actorID),
	)
	return uint64(len(ids)), nil
}

// BulkUnassign возвращает выбранное оборудование на склад. Берутся только
// единицы с ответственным; несоответствие хотя бы одной откатывает всю операцию.
func (s *EquipmentService) BulkUnassign(ctx context.Context, payload dto.BulkUnassignDTO, companyID *uint64) (uint64, error) {
	actorID, err := utils.GetEmployeeIDFromCtx(ctx)
	if err != nil {
		return 0, err
	}

	ids := uniqueIDs(payload.EquipmentIDs)
	if len(ids) == 0 {
		return 0, apperrors.NewInvalidInputError("не выбрано ни одной единицы оборудования")
	}

	inStorage, err := s.statusRepo.FindByCode(ctx, constants.EquipmentStatusInStorage)
	if err != nil {
		return 0, err
	}

	err = repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		locked, err := s.equipmentRepo.LockAssignedInTx(ctx, tx, ids, companyID)
		if err != nil {
			return err
		}
		if missing := missingIDs(ids, locked); len(missing) > 0 {
			return apperrors.NewStaleSelectionError(missing)
		}

		if err := s.equipmentRepo.BulkUnassignInTx(ctx, tx, ids, inStorage.ID); err != nil {
			return err
		}

		occurredAt := time.Now().UTC()
		entries := make([]entities.EquipmentHistory, 0, len(locked))
		for i := range locked {
			prev := locked[i]
			next := prev
			next.EmployeeID = null.Uint64{}
			next.StatusID = null.Uint64From(inStorage.ID)
			entries = append(entries, BuildHistoryEntry(&prev, &next, &actorID, occurredAt, constants.HistoryActionBulkUnassign, ""))
		}
		return s.historyRepo.CreateBulkInTx(ctx, tx, entries)
	})
	if err != nil {
		return 0, err
	}

	s.invalidateDashboard(ctx, null.Uint64{})
	s.logger.Info("Массовый возврат оборудования на склад",
		zap.Int("count", len(ids)),
		zap.Uint64("actor_id", actorID),
	)
	return uint64(len(ids)), nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	if err := s.equipmentRepo.DeleteEquipment(ctx, id); err != nil {
		return err
	}
	s.invalidateDashboard(ctx, null.Uint64{})
	return nil
}

// invalidateDashboard сбрасывает кеш сводки. Ошибка кеша не роняет операцию.
func (s *EquipmentService) invalidateDashboard(ctx context.Context, companyID null.Uint64) {
	keys := []string{dashboardCacheKeyAll}
	if companyID.Valid {
		keys = append(keys, dashboardCacheKey(&companyID.Uint64))
	}
	if err := s.cacheRepo.Del(ctx, keys...); err != nil {
		s.logger.Warn("Не удалось сбросить кеш сводки", zap.Error(err))
	}
}

func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	result := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

func missingIDs(requested []uint64, locked []entities.Equipment) []uint64 {
	lockedSet := make(map[uint64]struct{}, len(locked))
	for i := range locked {
		lockedSet[locked[i].ID] = struct{}{}
	}
	var missing []uint64
	for _, id := range requested {
		if _, ok := lockedSet[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func toEquipmentDTO(e *entities.Equipment) dto.EquipmentDTO {
	result := dto.EquipmentDTO{
		ID:        e.ID,
		Name:      e.Name,
		Label:     e.Label.String,
		CreatedAt: utils.FormatTimePtr(e.CreatedAt),
		UpdatedAt: utils.FormatTimePtr(e.UpdatedAt),
	}
	if e.Brand != nil {
		result.Brand = dto.ShortBrandDTO{ID: e.Brand.ID, Name: e.Brand.Name}
	}
	if e.Type != nil {
		result.Type = dto.ShortEquipmentTypeDTO{ID: e.Type.ID, Name: e.Type.Name}
	}
	if e.Status != nil {
		result.Status = &dto.ShortEquipmentStatusDTO{ID: e.Status.ID, Name: e.Status.Name}
	}
	if e.Employee != nil {
		result.Employee = &dto.ShortEmployeeDTO{ID: e.Employee.ID, FullName: e.Employee.FullName()}
	}
	if e.Supplier != nil {
		result.Supplier = &dto.ShortSupplierDTO{ID: e.Supplier.ID, Name: e.Supplier.Name}
	}
	if e.Company != nil {
		result.Company = &dto.ShortCompanyDTO{ID: e.Company.ID, Name: e.Company.Name}
	}
	if e.Department != nil {
		result.Department = &dto.ShortDepartmentDTO{ID: e.Department.ID, Name: e.Department.Name}
	}
	return result
}
