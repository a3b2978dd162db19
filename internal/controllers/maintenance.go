package controllers

import (
	"net/http"
	"strconv"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/middleware"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type MaintenanceController struct {
	maintenanceService *services.MaintenanceService
	statusService      *services.MaintenanceStatusService
	logger             *zap.Logger
}

func NewMaintenanceController(
	maintenanceService *services.MaintenanceService,
	statusService *services.MaintenanceStatusService,
	logger *zap.Logger,
) *MaintenanceController {
	return &MaintenanceController{
		maintenanceService: maintenanceService,
		statusService:      statusService,
		logger:             logger,
	}
}

func (c *MaintenanceController) GetMaintenanceRequests(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	companyID := middleware.CompanyIDFromContext(ctx.Request().Context())

	var statusID *uint64
	if raw := ctx.QueryParam("status_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
		}
		statusID = &id
	}

	requests, total, err := c.maintenanceService.GetMaintenanceRequests(ctx.Request().Context(), filter.Limit, filter.Offset, statusID, companyID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, requests, "Заявки на обслуживание успешно получены", http.StatusOK, total)
}

func (c *MaintenanceController) FindMaintenanceRequest(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	request, err := c.maintenanceService.FindMaintenanceRequest(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, request, "Заявка успешно найдена", http.StatusOK)
}

func (c *MaintenanceController) GetMaintenanceLogs(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	logs, err := c.maintenanceService.GetMaintenanceLogs(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, logs, "Журнал заявки успешно получен", http.StatusOK)
}

func (c *MaintenanceController) CreateMaintenanceRequest(ctx echo.Context) error {
	var payload dto.CreateMaintenanceRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	request, err := c.maintenanceService.CreateMaintenanceRequest(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, request, "Заявка на обслуживание успешно создана", http.StatusCreated)
}

func (c *MaintenanceController) UpdateMaintenanceRequest(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	var payload dto.UpdateMaintenanceRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	request, err := c.maintenanceService.UpdateMaintenanceRequest(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, request, "Заявка успешно обновлена", http.StatusOK)
}

func (c *MaintenanceController) DeleteMaintenanceRequest(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := c.maintenanceService.DeleteMaintenanceRequest(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Заявка успешно удалена", http.StatusOK)
}

func (c *MaintenanceController) GetMaintenanceStatuses(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	statuses, total, err := c.statusService.GetMaintenanceStatuses(ctx.Request().Context(), filter.Limit, filter.Offset)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, statuses, "Статусы заявок успешно получены", http.StatusOK, total)
}

func (c *MaintenanceController) CreateMaintenanceStatus(ctx echo.Context) error {
	var payload dto.CreateMaintenanceStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	status, err := c.statusService.CreateMaintenanceStatus(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, status, "Статус заявки успешно создан", http.StatusCreated)
}

func (c *MaintenanceController) UpdateMaintenanceStatus(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	var payload dto.UpdateMaintenanceStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	status, err := c.statusService.UpdateMaintenanceStatus(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, status, "Статус заявки успешно обновлен", http.StatusOK)
}

func (c *MaintenanceController) DeleteMaintenanceStatus(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := c.statusService.DeleteMaintenanceStatus(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Статус заявки успешно удален", http.StatusOK)
}
