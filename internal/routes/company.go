package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"
)

func runCompanyRouter(g *echo.Group, ctrl *controllers.CompanyController, authMW *middleware.AuthMiddleware) {
	adminOnly := authMW.RequireRole(constants.RoleAdmin)

	g.GET("/companies", ctrl.GetCompanies)
	g.GET("/companies/:id", ctrl.FindCompany)
	g.POST("/companies", ctrl.CreateCompany, adminOnly)
	g.PUT("/companies/:id", ctrl.UpdateCompany, adminOnly)
	g.DELETE("/companies/:id", ctrl.DeleteCompany, adminOnly)
}
