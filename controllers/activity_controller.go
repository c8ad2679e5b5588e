package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/eco-track/api-go/models"
	"github.com/eco-track/api-go/types"
	"github.com/eco-track/api-go/utils"
)

type ActivityController struct {
	DB      *gorm.DB
	Factors *types.FactorTable
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{
		DB:      db,
		Factors: types.DefaultFactorTable(),
	}
}

type LogActivityRequest struct {
	ActivityType string  `json:"activity_type" binding:"required"`
	Subtype      string  `json:"subtype" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"min=0"`
	Unit         string  `json:"unit" binding:"required"`
	RoundTrip    bool    `json:"round_trip"`
	Date         string  `json:"date"` // YYYY-MM-DD, defaults to today
	Source       string  `json:"source"`
}

type ActivityListQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
	Date string `form:"date"`
}

// LogActivity godoc
// @Summary Log an activity
// @Description Validates the activity against the persisted vocabulary, calculates its impact and appends it to the day session
// @Tags activities
// @Accept json
// @Produce json
// @Success 201 {object} StandardResponse
// @Router /activities [post]
func (ac *ActivityController) LogActivity(c *gin.Context) {
	user := utils.GetUser(c)

	var input LogActivityRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	calcReq := types.CalcRequest{
		ActivityType: input.ActivityType,
		Subtype:      input.Subtype,
		Quantity:     input.Quantity,
		Unit:         input.Unit,
		RoundTrip:    input.RoundTrip,
	}

	// The persisted vocabulary is closed: reject anything outside it before
	// the calculator or the database sees it.
	if err := types.ValidateLogRequest(calcReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	date := input.Date
	if date == "" {
		date = utils.Today()
	} else if _, err := time.Parse(utils.DayFormat, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD", "success": false})
		return
	}

	source := input.Source
	if source == "" {
		source = "api"
	}

	impact := types.Calculate(calcReq, ac.Factors)

	activity := models.ActivityLog{
		UserID:        user.UserID,
		Date:          date,
		ActivityType:  input.ActivityType,
		Subtype:       input.Subtype,
		Quantity:      input.Quantity,
		Unit:          input.Unit,
		RoundTrip:     input.RoundTrip,
		Co2eKg:        impact.Co2eKg,
		Kwh:           impact.Kwh,
		WaterL:        impact.WaterL,
		WasteKg:       impact.WasteKg,
		SavedCo2eKg:   impact.SavedCo2eKg,
		WaterSavedL:   impact.WaterSavedL,
		WasteDiverted: impact.WasteDiverted,
		Confidence:    impact.Confidence,
		Explanation:   impact.Explanation,
		Source:        source,
	}

	// Log insert and totals upsert succeed or fail together - no partial
	// aggregation.
	tx := ac.DB.Begin()

	if err := tx.Create(&activity).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store activity", "success": false})
		return
	}

	delta := types.ApplyImpact(types.DayTotals{}, impact)
	if err := upsertDayTotals(tx, user.UserID, date, delta); err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update day totals", "success": false})
		return
	}

	session, err := refreshDailyScore(tx, user.UserID, date)
	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update daily score", "success": false})
		return
	}

	tx.Commit()

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data: gin.H{
			"activity": activity,
			"impact":   impact,
			"session":  session,
		},
		Message: "Activity logged successfully",
	})
}

// GetActivities godoc
// @Summary List logged activities
// @Description Lists the caller's activity logs for a single date or a date range
// @Tags activities
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /activities [get]
func (ac *ActivityController) GetActivities(c *gin.Context) {
	user := utils.GetUser(c)

	var query ActivityListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	from, to := query.From, query.To
	if query.Date != "" {
		from, to = query.Date, query.Date
	}
	if from == "" {
		from, to = utils.Today(), utils.Today()
	}
	if to == "" {
		to = from
	}

	var activities []models.ActivityLog
	if err := ac.DB.
		Where("user_id = ? AND date >= ? AND date <= ?", user.UserID, from, to).
		Order("created_at DESC").
		Find(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activities", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    activities,
	})
}

// DeleteActivity godoc
// @Summary Delete a logged activity
// @Description Removes an activity log and subtracts its impact from the owning day session
// @Tags activities
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /activities/{id} [delete]
func (ac *ActivityController) DeleteActivity(c *gin.Context) {
	user := utils.GetUser(c)
	activityID := c.Param("id")

	var activity models.ActivityLog
	if err := ac.DB.Where("id = ? AND user_id = ?", activityID, user.UserID).First(&activity).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found", "success": false})
		return
	}

	tx := ac.DB.Begin()

	if err := tx.Delete(&activity).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activity", "success": false})
		return
	}

	// Subtract the stored impact through the same atomic counter path used
	// when logging.
	delta := negateTotals(types.ApplyImpact(types.DayTotals{}, activity.Impact()))
	if err := upsertDayTotals(tx, user.UserID, activity.Date, delta); err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update day totals", "success": false})
		return
	}

	if _, err := refreshDailyScore(tx, user.UserID, activity.Date); err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update daily score", "success": false})
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Message: "Activity deleted successfully",
	})
}

// PreviewImpact godoc
// @Summary Preview an activity's impact without logging it
// @Description Calculation-only endpoint; accepts the extended activity vocabulary and never touches storage
// @Tags activities
// @Accept json
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /impact/preview [post]
func (ac *ActivityController) PreviewImpact(c *gin.Context) {
	var req types.CalcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if !types.IsPreviewableActivityType(req.ActivityType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown activity_type " + req.ActivityType, "success": false})
		return
	}

	impact := types.Calculate(req, ac.Factors)

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    impact,
	})
}

// upsertDayTotals applies additive deltas to the (user, date) counter row in
// a single atomic statement. Concurrent writers for the same day cannot lose
// updates because the increment happens inside the database, not in a
// read-then-write round trip.
func upsertDayTotals(tx *gorm.DB, userID uint, date string, delta types.DayTotals) error {
	row := &models.DaySession{
		UserID:           userID,
		Date:             date,
		Co2eKg:           delta.Co2eKg,
		AvoidedCo2eKg:    delta.AvoidedCo2eKg,
		Kwh:              delta.Kwh,
		WaterLiters:      delta.WaterLiters,
		WaterSavedLiters: delta.WaterSavedLiters,
		WasteKg:          delta.WasteKg,
		WasteDiverted:    delta.WasteDiverted,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "date"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"co2e_kg":            gorm.Expr("day_sessions.co2e_kg + ?", delta.Co2eKg),
			"avoided_co2e_kg":    gorm.Expr("day_sessions.avoided_co2e_kg + ?", delta.AvoidedCo2eKg),
			"kwh":                gorm.Expr("day_sessions.kwh + ?", delta.Kwh),
			"water_liters":       gorm.Expr("day_sessions.water_liters + ?", delta.WaterLiters),
			"water_saved_liters": gorm.Expr("day_sessions.water_saved_liters + ?", delta.WaterSavedLiters),
			"waste_kg":           gorm.Expr("day_sessions.waste_kg + ?", delta.WasteKg),
			"waste_diverted":     gorm.Expr("day_sessions.waste_diverted + ?", delta.WasteDiverted),
			"updated_at":         gorm.Expr("NOW()"),
		}),
	}).Create(row).Error
}

func negateTotals(t types.DayTotals) types.DayTotals {
	return types.DayTotals{
		Co2eKg:           -t.Co2eKg,
		AvoidedCo2eKg:    -t.AvoidedCo2eKg,
		Kwh:              -t.Kwh,
		WaterLiters:      -t.WaterLiters,
		WaterSavedLiters: -t.WaterSavedLiters,
		WasteKg:          -t.WasteKg,
		WasteDiverted:    -t.WasteDiverted,
	}
}

// refreshDailyScore recomputes the session's score from its counters and
// goal state, inside the caller's transaction.
func refreshDailyScore(tx *gorm.DB, userID uint, date string) (*models.DaySession, error) {
	var session models.DaySession
	if err := tx.Where("user_id = ? AND date = ?", userID, date).First(&session).Error; err != nil {
		return nil, err
	}

	goalsCompleted, totalGoals, err := countGoals(tx, session.ID)
	if err != nil {
		return nil, err
	}

	session.DailyScore = types.DailyScore(session.Co2eKg, session.AvoidedCo2eKg, goalsCompleted, totalGoals)
	if err := tx.Model(&models.DaySession{}).Where("id = ?", session.ID).
		Update("daily_score", session.DailyScore).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func countGoals(tx *gorm.DB, sessionID uint) (completed int, total int, err error) {
	var totalCount, completedCount int64
	if err = tx.Model(&models.Goal{}).Where("day_session_id = ?", sessionID).Count(&totalCount).Error; err != nil {
		return 0, 0, err
	}
	if err = tx.Model(&models.Goal{}).Where("day_session_id = ? AND completed = ?", sessionID, true).Count(&completedCount).Error; err != nil {
		return 0, 0, err
	}
	return int(completedCount), int(totalCount), nil
}
