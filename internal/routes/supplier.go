package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"
)

func runSupplierRouter(g *echo.Group, ctrl *controllers.SupplierController, authMW *middleware.AuthMiddleware) {
	adminOnly := authMW.RequireRole(constants.RoleAdmin)

	g.GET("/suppliers", ctrl.GetSuppliers)
	g.GET("/suppliers/:id", ctrl.FindSupplier)
	g.POST("/suppliers", ctrl.CreateSupplier)
	g.PUT("/suppliers/:id", ctrl.UpdateSupplier)
	g.DELETE("/suppliers/:id", ctrl.DeleteSupplier, adminOnly)
}
