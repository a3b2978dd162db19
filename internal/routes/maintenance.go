package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"
)

func runMaintenanceRouter(g *echo.Group, ctrl *controllers.MaintenanceController, authMW *middleware.AuthMiddleware) {
	adminOnly := authMW.RequireRole(constants.RoleAdmin)

	g.GET("/maintenance-requests", ctrl.GetMaintenanceRequests)
	g.GET("/maintenance-requests/:id", ctrl.FindMaintenanceRequest)
	g.GET("/maintenance-requests/:id/logs", ctrl.GetMaintenanceLogs)
	g.POST("/maintenance-requests", ctrl.CreateMaintenanceRequest)
	g.PUT("/maintenance-requests/:id", ctrl.UpdateMaintenanceRequest)
	g.DELETE("/maintenance-requests/:id", ctrl.DeleteMaintenanceRequest, adminOnly)

	g.GET("/maintenance-statuses", ctrl.GetMaintenanceStatuses)
	g.POST("/maintenance-statuses", ctrl.CreateMaintenanceStatus, adminOnly)
	g.PUT("/maintenance-statuses/:id", ctrl.UpdateMaintenanceStatus, adminOnly)
	g.DELETE("/maintenance-statuses/:id", ctrl.DeleteMaintenanceStatus, adminOnly)
}
