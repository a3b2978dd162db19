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

type SupplierController struct {
	supplierService *services.SupplierService
	logger          *zap.Logger
}

func NewSupplierController(supplierService *services.SupplierService, logger *zap.Logger) *SupplierController {
	return &SupplierController{supplierService: supplierService, logger: logger}
}

func (c *SupplierController) GetSuppliers(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	suppliers, total, err := c.supplierService.GetSuppliers(ctx.Request().Context(), filter.Limit, filter.Offset, filter.Search)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, suppliers, "Поставщики успешно получены", http.StatusOK, total)
}

func (c *SupplierController) FindSupplier(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	supplier, err := c.supplierService.FindSupplier(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, supplier, "Поставщик успешно найден", http.StatusOK)
}

func (c *SupplierController) CreateSupplier(ctx echo.Context) error {
	var payload dto.CreateSupplierDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	supplier, err := c.supplierService.CreateSupplier(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, supplier, "Поставщик успешно создан", http.StatusCreated)
}

func (c *SupplierController) UpdateSupplier(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	var payload dto.UpdateSupplierDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	supplier, err := c.supplierService.UpdateSupplier(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, supplier, "Поставщик успешно обновлен", http.StatusOK)
}

func (c *SupplierController) DeleteSupplier(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := c.supplierService.DeleteSupplier(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Поставщик успешно удален", http.StatusOK)
}
