package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"
)

func runInvoiceRouter(g *echo.Group, ctrl *controllers.InvoiceController, authMW *middleware.AuthMiddleware) {
	adminOnly := authMW.RequireRole(constants.RoleAdmin)

	g.GET("/invoices", ctrl.GetInvoices)
	g.GET("/invoices/:id", ctrl.FindInvoice)
	g.POST("/invoices", ctrl.CreateInvoice)
	g.PUT("/invoices/:id", ctrl.UpdateInvoice)
	g.DELETE("/invoices/:id", ctrl.DeleteInvoice, adminOnly)
}
