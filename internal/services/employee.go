package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type EmployeeService struct {
	employeeRepo repositories.EmployeeRepositoryInterface
	logger       *zap.Logger
}

func NewEmployeeService(employeeRepo repositories.EmployeeRepositoryInterface, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo, logger: logger}
}

func (s *EmployeeService) GetEmployees(ctx context.Context, limit, offset uint64, search string, companyID *uint64) ([]dto.EmployeeDTO, uint64, error) {
	return s.employeeRepo.GetEmployees(ctx, limit, offset, search, companyID)
}

func (s *EmployeeService) FindEmployee(ctx context.Context, id uint64) (*dto.EmployeeDTO, error) {
	employee, err := s.employeeRepo.FindEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	employeeDTO := toEmployeeDTO(employee)
	return &employeeDTO, nil
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*dto.EmployeeDTO, error) {
	employee := &entities.Employee{
		PersonnelNumber: payload.PersonnelNumber,
		FirstName:       payload.FirstName,
		LastName:        payload.LastName,
		Active:          true,
		CompanyID:       payload.CompanyID,
		DepartmentID:    payload.DepartmentID,
		Role:            payload.Role,
	}
	if employee.Role == "" {
		employee.Role = constants.RoleUser
	}
	if payload.MiddleName != nil {
		employee.MiddleName = null.StringFrom(*payload.MiddleName)
	}
	if payload.Position != nil {
		employee.Position = null.StringFrom(*payload.Position)
	}
	if payload.Phone != nil {
		employee.Phone = null.StringFrom(*payload.Phone)
	}
	if payload.Password != nil {
		hash, err := utils.HashPassword(*payload.Password)
		if err != nil {
			return nil, err
		}
		employee.PasswordHash = null.StringFrom(hash)
	}

	id, err := s.employeeRepo.CreateEmployee(ctx, employee)
	if err != nil {
		s.logger.Error("Ошибка при создании сотрудника", zap.Error(err))
		return nil, err
	}
	return s.FindEmployee(ctx, id)
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uint64, payload dto.UpdateEmployeeDTO) (*dto.EmployeeDTO, error) {
	if err := s.employeeRepo.UpdateEmployee(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.FindEmployee(ctx, id)
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uint64) error {
	return s.employeeRepo.DeleteEmployee(ctx, id)
}

func toEmployeeDTO(e *entities.Employee) dto.EmployeeDTO {
	result := dto.EmployeeDTO{
		ID:              e.ID,
		PersonnelNumber: e.PersonnelNumber,
		FullName:        e.FullName(),
		Active:          e.Active,
		Position:        e.Position.String,
		Phone:           e.Phone.String,
		Company:         dto.ShortCompanyDTO{ID: e.CompanyID},
		Department:      dto.ShortDepartmentDTO{ID: e.DepartmentID},
		Role:            e.Role,
		CreatedAt:       utils.FormatTimePtr(e.CreatedAt),
		UpdatedAt:       utils.FormatTimePtr(e.UpdatedAt),
	}
	if e.Company != nil {
		result.Company.Name = e.Company.Name
	}
	if e.Department != nil {
		result.Department.Name = e.Department.Name
	}
	return result
}
