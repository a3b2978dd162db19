package controllers

import (
	"net/http"

	"inventory-system/internal/services"
	"inventory-system/pkg/middleware"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EquipmentHistoryController struct {
	historyService *services.EquipmentHistoryService
	logger         *zap.Logger
}

func NewEquipmentHistoryController(historyService *services.EquipmentHistoryService, logger *zap.Logger) *EquipmentHistoryController {
	return &EquipmentHistoryController{historyService: historyService, logger: logger}
}

// GetHistory отдает сквозной журнал изменений по всему парку оборудования.
func (c *EquipmentHistoryController) GetHistory(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	companyID := middleware.CompanyIDFromContext(ctx.Request().Context())
	history, total, err := c.historyService.GetHistory(ctx.Request().Context(), filter, companyID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, history, "Журнал изменений успешно получен", http.StatusOK, total)
}
