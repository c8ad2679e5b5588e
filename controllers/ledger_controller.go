package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eco-track/api-go/models"
	"github.com/eco-track/api-go/types"
	"github.com/eco-track/api-go/utils"
)

type LedgerController struct {
	DB *gorm.DB
}

type LedgerQuery struct {
	Period string `form:"period,default=week" binding:"omitempty,oneof=week month"`
}

func NewLedgerController(db *gorm.DB) *LedgerController {
	return &LedgerController{DB: db}
}

// GetSummary godoc
// @Summary Get a week or month rollup
// @Description Folds the caller's day sessions into a period ledger with category breakdown and daily trend
// @Tags ledger
// @Produce json
// @Param period query string false "week or month"
// @Success 200 {object} StandardResponse
// @Router /ledger/summary [get]
func (lc *LedgerController) GetSummary(c *gin.Context) {
	user := utils.GetUser(c)

	var query LedgerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}
	if query.Period == "" {
		query.Period = "week"
	}

	ledger, err := buildLedger(lc.DB, user.UserID, query.Period, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    ledger,
	})
}

// GetStreak godoc
// @Summary Get the current tracking streak
// @Tags ledger
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /ledger/streak [get]
func (lc *LedgerController) GetStreak(c *gin.Context) {
	user := utils.GetUser(c)

	var dates []string
	if err := lc.DB.Model(&models.DaySession{}).
		Where("user_id = ?", user.UserID).
		Order("date DESC").
		Limit(366).
		Pluck("date", &dates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sessions", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"streakDays": types.CurrentStreak(dates, time.Now()),
		},
	})
}

// buildLedger loads the period's sessions and activities and hands them to
// the pure fold. Shared with the share controller so exported summaries use
// exactly the numbers the dashboard shows.
func buildLedger(db *gorm.DB, userID uint, periodType string, now time.Time) (types.LedgerPeriod, error) {
	from, to := utils.PeriodRange(periodType, now)

	var sessions []models.DaySession
	if err := db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Find(&sessions).Error; err != nil {
		return types.LedgerPeriod{}, err
	}

	var activities []models.ActivityLog
	if err := db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Find(&activities).Error; err != nil {
		return types.LedgerPeriod{}, err
	}

	snapshots := make([]types.SessionSnapshot, 0, len(sessions))
	for i := range sessions {
		snapshots = append(snapshots, sessions[i].Snapshot())
	}
	activitySnapshots := make([]types.ActivitySnapshot, 0, len(activities))
	for _, activity := range activities {
		activitySnapshots = append(activitySnapshots, types.ActivitySnapshot{
			ActivityType: activity.ActivityType,
			Co2eKg:       activity.Co2eKg,
		})
	}

	return types.Aggregate(snapshots, activitySnapshots, periodType, now), nil
}
