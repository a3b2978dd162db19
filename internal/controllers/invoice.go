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

type InvoiceController struct {
	invoiceService *services.InvoiceService
	logger         *zap.Logger
}

func NewInvoiceController(invoiceService *services.InvoiceService, logger *zap.Logger) *InvoiceController {
	return &InvoiceController{invoiceService: invoiceService, logger: logger}
}

func (c *InvoiceController) GetInvoices(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	var supplierID *uint64
	if raw := ctx.QueryParam("supplier_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
		}
		supplierID = &id
	}

	invoices, total, err := c.invoiceService.GetInvoices(ctx.Request().Context(), filter.Limit, filter.Offset, filter.Search, supplierID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, invoices, "Накладные успешно получены", http.StatusOK, total)
}

func (c *InvoiceController) FindInvoice(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	invoice, err := c.invoiceService.FindInvoice(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, invoice, "Накладная успешно найдена", http.StatusOK)
}

func (c *InvoiceController) CreateInvoice(ctx echo.Context) error {
	var payload dto.CreateInvoiceDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	invoice, err := c.invoiceService.CreateInvoice(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, invoice, "Накладная успешно создана", http.StatusCreated)
}

func (c *InvoiceController) UpdateInvoice(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	var payload dto.UpdateInvoiceDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	invoice, err := c.invoiceService.UpdateInvoice(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, invoice, "Накладная успешно обновлена", http.StatusOK)
}

func (c *InvoiceController) DeleteInvoice(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := c.invoiceService.DeleteInvoice(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Накладная успешно удалена", http.StatusOK)
}
