package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eco-track/api-go/controllers"
	"github.com/eco-track/api-go/middleware"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	activityController := controllers.NewActivityController(db)
	sessionController := controllers.NewSessionController(db)
	ledgerController := controllers.NewLedgerController(db)
	shareController := controllers.NewShareController(db)
	userController := controllers.NewUserController(db)
	validationController := controllers.NewValidationController(db)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/auth/google", authController.GoogleLogin)

		// Impact preview is calculation-only: it must stay usable even when
		// the database is down, so it lives outside the protected group.
		public.POST("/impact/preview", activityController.PreviewImpact)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.POST("/refresh-token", authController.RefreshToken)
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)

		SetupActivityRoutes(protected, activityController)
		SetupSessionRoutes(protected, sessionController)
		SetupLedgerRoutes(protected, ledgerController, shareController)
		SetupUserRoutes(protected, userController)
		SetupValidationRoutes(protected, validationController)
	}
}
