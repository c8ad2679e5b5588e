package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eco-track/api-go/controllers"
)

func SetupUserRoutes(protected *gin.RouterGroup, userController *controllers.UserController) {
	users := protected.Group("/users")
	{
		users.GET("/me/stats", userController.GetMyStats)
		users.GET("/top", userController.GetTopUsers)
	}
}
