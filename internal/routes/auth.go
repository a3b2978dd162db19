package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runAuthRouter(api *echo.Group, ctrl *controllers.AuthController) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", ctrl.Login)
		authGroup.POST("/refresh_token", ctrl.Refresh)
	}
}
