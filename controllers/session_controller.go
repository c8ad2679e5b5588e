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

type SessionController struct {
	DB *gorm.DB
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db}
}

type AddGoalRequest struct {
	Text     string `json:"text" binding:"required"`
	Category string `json:"category"`
	Date     string `json:"date"` // defaults to today
}

// GetToday godoc
// @Summary Get today's day session
// @Description Returns today's session with goals and streak; a zero-valued session if nothing was logged yet
// @Tags sessions
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /sessions/today [get]
func (sc *SessionController) GetToday(c *gin.Context) {
	user := utils.GetUser(c)
	today := utils.Today()

	var session models.DaySession
	err := sc.DB.Preload("Goals").Where("user_id = ? AND date = ?", user.UserID, today).First(&session).Error
	if err == gorm.ErrRecordNotFound {
		// Sessions are created on the first activity of the day; before that
		// the UI still gets a well-formed zero-valued view.
		session = models.DaySession{UserID: user.UserID, Date: today, DailyScore: 50, Goals: []models.Goal{}}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch day session", "success": false})
		return
	}

	streak, err := sc.currentStreak(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute streak", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"session":    session,
			"totals":     session.Totals(),
			"streakDays": streak,
		},
	})
}

// AddGoal godoc
// @Summary Add a goal to a day session
// @Tags sessions
// @Accept json
// @Produce json
// @Success 201 {object} StandardResponse
// @Router /sessions/goals [post]
func (sc *SessionController) AddGoal(c *gin.Context) {
	user := utils.GetUser(c)

	var input AddGoalRequest
	if err := c.ShouldBindJSON(&input); err != nil {
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

	tx := sc.DB.Begin()

	// Goals may be set before the first activity; materialize the session row
	// through the same atomic counter path so concurrent first writes for the
	// day cannot collide.
	if err := upsertDayTotals(tx, user.UserID, date, types.DayTotals{}); err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open day session", "success": false})
		return
	}

	var session models.DaySession
	if err := tx.Where("user_id = ? AND date = ?", user.UserID, date).First(&session).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open day session", "success": false})
		return
	}

	goal := models.Goal{
		DaySessionID: session.ID,
		Text:         input.Text,
		Category:     input.Category,
	}
	if err := tx.Create(&goal).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal", "success": false})
		return
	}

	if _, err := refreshDailyScore(tx, user.UserID, date); err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update daily score", "success": false})
		return
	}

	tx.Commit()

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    goal,
		Message: "Goal added successfully",
	})
}

// ToggleGoal godoc
// @Summary Toggle a goal's completion
// @Tags sessions
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /sessions/goals/{id}/toggle [patch]
func (sc *SessionController) ToggleGoal(c *gin.Context) {
	user := utils.GetUser(c)
	goalID := c.Param("id")

	var goal models.Goal
	if err := sc.DB.
		Joins("JOIN day_sessions ON day_sessions.id = goals.day_session_id").
		Where("goals.id = ? AND day_sessions.user_id = ?", goalID, user.UserID).
		First(&goal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found", "success": false})
		return
	}

	var session models.DaySession
	if err := sc.DB.First(&session, goal.DaySessionID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch day session", "success": false})
		return
	}

	tx := sc.DB.Begin()

	goal.Completed = !goal.Completed
	if err := tx.Model(&models.Goal{}).Where("id = ?", goal.ID).Update("completed", goal.Completed).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update goal", "success": false})
		return
	}

	if _, err := refreshDailyScore(tx, user.UserID, session.Date); err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update daily score", "success": false})
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    goal,
	})
}

// CloseDay godoc
// @Summary Close out today's session
// @Description Runs the daily-close ritual: computes green points from impact, goals and streak, and adds them to the user's lifetime total
// @Tags sessions
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /sessions/close [post]
func (sc *SessionController) CloseDay(c *gin.Context) {
	user := utils.GetUser(c)
	today := utils.Today()

	var session models.DaySession
	if err := sc.DB.Where("user_id = ? AND date = ?", user.UserID, today).First(&session).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No day session to close - log an activity first", "success": false})
		return
	}

	if session.DailyCloseDone {
		c.JSON(http.StatusConflict, gin.H{"error": "Day already closed", "success": false})
		return
	}

	goalsCompleted, totalGoals, err := countGoals(sc.DB, session.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals", "success": false})
		return
	}

	streak, err := sc.currentStreak(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute streak", "success": false})
		return
	}

	points := types.ComputePoints(session.AvoidedCo2eKg, goalsCompleted, totalGoals, streak, true)

	tx := sc.DB.Begin()

	updates := map[string]interface{}{
		"green_points":     points.TotalPoints,
		"streak_days":      streak,
		"daily_close_done": true,
	}
	if err := tx.Model(&models.DaySession{}).Where("id = ?", session.ID).Updates(updates).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close day", "success": false})
		return
	}

	// Lifetime total is bumped in the database so concurrent closes on other
	// days cannot lose the increment.
	if err := tx.Model(&models.User{}).Where("id = ?", user.UserID).
		Update("total_points", gorm.Expr("total_points + ?", points.TotalPoints)).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lifetime points", "success": false})
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"points":     points,
			"streakDays": streak,
		},
		Message: "Day closed successfully",
	})
}

func (sc *SessionController) currentStreak(userID uint) (int, error) {
	var dates []string
	// A year's worth of sessions bounds the walk-back comfortably.
	if err := sc.DB.Model(&models.DaySession{}).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(366).
		Pluck("date", &dates).Error; err != nil {
		return 0, err
	}
	return types.CurrentStreak(dates, time.Now()), nil
}
