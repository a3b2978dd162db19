package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"
)

func runEquipmentRouter(g *echo.Group, ctrl *controllers.EquipmentController, authMW *middleware.AuthMiddleware) {
	adminOnly := authMW.RequireRole(constants.RoleAdmin)

	g.GET("/equipments", ctrl.GetEquipments)
	g.GET("/equipments/:id", ctrl.FindEquipment)
	g.POST("/equipments", ctrl.CreateEquipment)
	g.PUT("/equipments/:id", ctrl.UpdateEquipment)
	g.DELETE("/equipments/:id", ctrl.DeleteEquipment, adminOnly)

	g.POST("/equipments/bulk-assign", ctrl.BulkAssign)
	g.POST("/equipments/bulk-unassign", ctrl.BulkUnassign)

	g.GET("/equipments/:id/history", ctrl.GetEquipmentHistory)
}
