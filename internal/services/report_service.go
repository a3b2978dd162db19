package services

import (
	"context"

	"inventory-system/internal/repositories"

	"go.uber.org/zap"
)

type ReportServiceInterface interface {
	GetEquipmentReport(ctx context.Context, companyID *uint64) ([]repositories.EquipmentReportRow, error)
}

type reportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &reportService{reportRepo: reportRepo, logger: logger}
}

func (s *reportService) GetEquipmentReport(ctx context.Context, companyID *uint64) ([]repositories.EquipmentReportRow, error) {
	return s.reportRepo.ListEquipmentForReport(ctx, companyID)
}
