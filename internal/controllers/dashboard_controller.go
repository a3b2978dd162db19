package controllers

import (
	"net/http"

	"inventory-system/internal/services"
	"inventory-system/pkg/middleware"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardController struct {
	dashboardService *services.DashboardService
	logger           *zap.Logger
}

func NewDashboardController(dashboardService *services.DashboardService, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, logger: logger}
}

func (c *DashboardController) GetSummary(ctx echo.Context) error {
	companyID := middleware.CompanyIDFromContext(ctx.Request().Context())
	summary, err := c.dashboardService.GetSummary(ctx.Request().Context(), companyID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, summary, "Сводка успешно получена", http.StatusOK)
}
