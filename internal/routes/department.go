package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"
)

func runDepartmentRouter(g *echo.Group, ctrl *controllers.DepartmentController, authMW *middleware.AuthMiddleware) {
	adminOnly := authMW.RequireRole(constants.RoleAdmin)

	g.GET("/departments", ctrl.GetDepartments)
	g.GET("/departments/:id", ctrl.FindDepartment)
	g.POST("/departments", ctrl.CreateDepartment, adminOnly)
	g.PUT("/departments/:id", ctrl.UpdateDepartment, adminOnly)
	g.DELETE("/departments/:id", ctrl.DeleteDepartment, adminOnly)
}
