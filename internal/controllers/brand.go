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

type BrandController struct {
	brandService *services.BrandService
	logger       *zap.Logger
}

func NewBrandController(brandService *services.BrandService, logger *zap.Logger) *BrandController {
	return &BrandController{brandService: brandService, logger: logger}
}

func (c *BrandController) GetBrands(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	brands, total, err := c.brandService.GetBrands(ctx.Request().Context(), filter.Limit, filter.Offset, filter.Search)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, brands, "Бренды успешно получены", http.StatusOK, total)
}

func (c *BrandController) FindBrand(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	brand, err := c.brandService.FindBrand(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, brand, "Бренд успешно найден", http.StatusOK)
}

func (c *BrandController) CreateBrand(ctx echo.Context) error {
	var payload dto.CreateBrandDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	brand, err := c.brandService.CreateBrand(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, brand, "Бренд успешно создан", http.StatusCreated)
}

func (c *BrandController) UpdateBrand(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	var payload dto.UpdateBrandDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	brand, err := c.brandService.UpdateBrand(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, brand, "Бренд успешно обновлен", http.StatusOK)
}

func (c *BrandController) DeleteBrand(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := c.brandService.DeleteBrand(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Бренд успешно удален", http.StatusOK)
}
