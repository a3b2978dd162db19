package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/middleware"
	"inventory-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetEquipmentReport выгружает парк оборудования; format=xlsx отдает файл Excel.
func (c *ReportController) GetEquipmentReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	companyID := middleware.CompanyIDFromContext(reqCtx)
	format := strings.ToLower(ctx.QueryParam("format"))

	data, err := c.reportService.GetEquipmentReport(reqCtx, companyID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}

	return utils.SuccessResponse(ctx, data, "Отчет успешно сформирован", http.StatusOK, uint64(len(data)))
}

var equipmentReportHeaders = []string{
	"№", "Наименование", "Инв. номер", "Бренд", "Тип", "Статус",
	"Ответственный", "Компания", "Отдел", "Дата постановки на учет",
}

func reportRowToSlice(row repositories.EquipmentReportRow) []interface{} {
	return []interface{}{
		row.ID, row.Name, row.Label, row.BrandName, row.TypeName, row.StatusName,
		row.EmployeeName, row.CompanyName, row.DepartmentName,
		row.CreatedAt.Format("02.01.2006"),
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []repositories.EquipmentReportRow) error {
	f := excelize.NewFile()
	sheet := "Парк оборудования"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &equipmentReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "J1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := reportRowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 35)
	f.SetColWidth(sheet, "C", "F", 20)
	f.SetColWidth(sheet, "G", "I", 25)
	f.SetColWidth(sheet, "J", "J", 22)

	fileName := fmt.Sprintf("equipment_report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
