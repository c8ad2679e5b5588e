package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eco-track/api-go/controllers"
)

func SetupLedgerRoutes(protected *gin.RouterGroup, ledgerController *controllers.LedgerController, shareController *controllers.ShareController) {
	ledger := protected.Group("/ledger")
	{
		ledger.GET("/summary", ledgerController.GetSummary)
		ledger.GET("/streak", ledgerController.GetStreak)

		ledger.POST("/share", shareController.CreateShare)
		ledger.GET("/share", shareController.ListShares)
		ledger.DELETE("/share/:id", shareController.DeleteShare)
	}
}
