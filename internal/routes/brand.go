package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"
)

func runBrandRouter(g *echo.Group, ctrl *controllers.BrandController, authMW *middleware.AuthMiddleware) {
	adminOnly := authMW.RequireRole(constants.RoleAdmin)

	g.GET("/brands", ctrl.GetBrands)
	g.GET("/brands/:id", ctrl.FindBrand)
	g.POST("/brands", ctrl.CreateBrand)
	g.PUT("/brands/:id", ctrl.UpdateBrand)
	g.DELETE("/brands/:id", ctrl.DeleteBrand, adminOnly)
}
