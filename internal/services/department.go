package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"

	"go.uber.org/zap"
)

type DepartmentService struct {
	departmentRepo repositories.DepartmentRepositoryInterface
	logger         *zap.Logger
}

func NewDepartmentService(departmentRepo repositories.DepartmentRepositoryInterface, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo, logger: logger}
}

func (s *DepartmentService) GetDepartments(ctx context.Context, limit, offset uint64, search string, companyID *uint64) ([]dto.DepartmentDTO, uint64, error) {
	return s.departmentRepo.GetDepartments(ctx, limit, offset, search, companyID)
}

func (s *DepartmentService) FindDepartment(ctx context.Context, id uint64) (*dto.DepartmentDTO, error) {
	return s.departmentRepo.FindDepartment(ctx, id)
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*dto.DepartmentDTO, error) {
	department, err := s.departmentRepo.CreateDepartment(ctx, payload)
	if err != nil {
		s.logger.Error("Ошибка при создании отдела", zap.Error(err))
		return nil, err
	}
	return department, nil
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*dto.DepartmentDTO, error) {
	return s.departmentRepo.UpdateDepartment(ctx, id, payload)
}

func (s *DepartmentService) DeleteDepartment(ctx context.Context, id uint64) error {
	return s.departmentRepo.DeleteDepartment(ctx, id)
}
