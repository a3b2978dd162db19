package services

import (
	"context"
	"encoding/json"
	"time"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"

	"go.uber.org/zap"
)

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
	cacheRepo     repositories.CacheRepositoryInterface
	cacheTTL      time.Duration
	logger        *zap.Logger
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		cacheRepo:     cacheRepo,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

// GetSummary отдает сводку по парку. Результат кешируется в Redis; изменение
// оборудования сбрасывает кеш, TTL страхует от залежавшихся ключей.
func (s *DashboardService) GetSummary(ctx context.Context, companyID *uint64) (*dto.DashboardSummaryDTO, error) {
	cacheKey := dashboardCacheKey(companyID)

	if cached, err := s.cacheRepo.Get(ctx, cacheKey); err == nil && cached != "" {
		var summary dto.DashboardSummaryDTO
		if err := json.Unmarshal([]byte(cached), &summary); err == nil {
			return &summary, nil
		}
		s.logger.Warn("Поврежденная запись кеша сводки, пересчитываем", zap.String("key", cacheKey))
	}

	summary, err := s.dashboardRepo.GetSummary(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(summary); err == nil {
		if err := s.cacheRepo.Set(ctx, cacheKey, string(raw), s.cacheTTL); err != nil {
			s.logger.Warn("Не удалось записать сводку в кеш", zap.Error(err))
		}
	}
	return summary, nil
}
