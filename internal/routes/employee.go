package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"
)

func runEmployeeRouter(g *echo.Group, ctrl *controllers.EmployeeController, authMW *middleware.AuthMiddleware) {
	adminOnly := authMW.RequireRole(constants.RoleAdmin)

	g.GET("/employees", ctrl.GetEmployees)
	g.GET("/employees/:id", ctrl.FindEmployee)
	g.POST("/employees", ctrl.CreateEmployee, adminOnly)
	g.PUT("/employees/:id", ctrl.UpdateEmployee, adminOnly)
	g.DELETE("/employees/:id", ctrl.DeleteEmployee, adminOnly)
}
