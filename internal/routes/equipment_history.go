package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runEquipmentHistoryRouter(g *echo.Group, ctrl *controllers.EquipmentHistoryController) {
	g.GET("/equipment-history", ctrl.GetHistory)
}
