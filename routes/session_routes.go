package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eco-track/api-go/controllers"
)

func SetupSessionRoutes(protected *gin.RouterGroup, sessionController *controllers.SessionController) {
	sessions := protected.Group("/sessions")
	{
		sessions.GET("/today", sessionController.GetToday)
		sessions.POST("/goals", sessionController.AddGoal)
		sessions.PATCH("/goals/:id/toggle", sessionController.ToggleGoal)
		sessions.POST("/close", sessionController.CloseDay)
	}
}
