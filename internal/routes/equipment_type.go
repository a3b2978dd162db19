package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"
)

func runEquipmentTypeRouter(g *echo.Group, ctrl *controllers.EquipmentTypeController, authMW *middleware.AuthMiddleware) {
	adminOnly := authMW.RequireRole(constants.RoleAdmin)

	g.GET("/equipment-types", ctrl.GetEquipmentTypes)
	g.GET("/equipment-types/:id", ctrl.FindEquipmentType)
	g.POST("/equipment-types", ctrl.CreateEquipmentType)
	g.PUT("/equipment-types/:id", ctrl.UpdateEquipmentType)
	g.DELETE("/equipment-types/:id", ctrl.DeleteEquipmentType, adminOnly)

	g.GET("/equipment-types/:id/attributes", ctrl.GetTypeAttributes)
	g.POST("/equipment-types/:id/attributes", ctrl.AddTypeAttribute)
	g.DELETE("/equipment-types/:id/attributes/:attributeId", ctrl.DeleteTypeAttribute, adminOnly)
}
