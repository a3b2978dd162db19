package controllers

import (
	"net/http"
	"strconv"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EquipmentStatusController struct {
	statusService *services.EquipmentStatusService
	logger        *zap.Logger
}

func NewEquipmentStatusController(statusService *services.EquipmentStatusService, logger *zap.Logger) *EquipmentStatusController {
	return &EquipmentStatusController{statusService: statusService, logger: logger}
}

func (c *EquipmentStatusController) GetEquipmentStatuses(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	statuses, total, err := c.statusService.GetEquipmentStatuses(ctx.Request().Context(), filter.Limit, filter.Offset, filter.Search)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, statuses, "Статусы успешно получены", http.StatusOK, total)
}

func (c *EquipmentStatusController) FindEquipmentStatus(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	status, err := c.statusService.FindEquipmentStatus(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, status, "Статус успешно найден", http.StatusOK)
}

func (c *EquipmentStatusController) CreateEquipmentStatus(ctx echo.Context) error {
	var payload dto.CreateEquipmentStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	status, err := c.statusService.CreateEquipmentStatus(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, status, "Статус успешно создан", http.StatusCreated)
}

func (c *EquipmentStatusController) UpdateEquipmentStatus(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	var payload dto.UpdateEquipmentStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	status, err := c.statusService.UpdateEquipmentStatus(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, status, "Статус успешно обновлен", http.StatusOK)
}

func (c *EquipmentStatusController) DeleteEquipmentStatus(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := c.statusService.DeleteEquipmentStatus(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Статус успешно удален", http.StatusOK)
}
