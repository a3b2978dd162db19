package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"
)

func runEquipmentStatusRouter(g *echo.Group, ctrl *controllers.EquipmentStatusController, authMW *middleware.AuthMiddleware) {
	adminOnly := authMW.RequireRole(constants.RoleAdmin)

	g.GET("/equipment-statuses", ctrl.GetEquipmentStatuses)
	g.GET("/equipment-statuses/:id", ctrl.FindEquipmentStatus)
	g.POST("/equipment-statuses", ctrl.CreateEquipmentStatus, adminOnly)
	g.PUT("/equipment-statuses/:id", ctrl.UpdateEquipmentStatus, adminOnly)
	g.DELETE("/equipment-statuses/:id", ctrl.DeleteEquipmentStatus, adminOnly)
}
