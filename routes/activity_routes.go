package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eco-track/api-go/controllers"
)

func SetupActivityRoutes(protected *gin.RouterGroup, activityController *controllers.ActivityController) {
	activities := protected.Group("/activities")
	{
		activities.POST("", activityController.LogActivity)
		activities.GET("", activityController.GetActivities)
		activities.DELETE("/:id", activityController.DeleteActivity)
	}
}
