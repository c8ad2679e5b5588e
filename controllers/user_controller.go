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

type UserController struct {
	DB *gorm.DB
}

type TopUsersQuery struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"pageSize,default=10" binding:"min=1,max=50"`
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GetMyStats godoc
// @Summary Get the caller's lifetime stats
// @Description Lifetime green points, tracked days, streak and summed impact counters
// @Tags users
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /users/me/stats [get]
func (uc *UserController) GetMyStats(c *gin.Context) {
	user := utils.GetUser(c)

	var dbUser models.User
	if err := uc.DB.First(&dbUser, user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	var lifetime struct {
		DaysTracked      int64
		Co2eKg           float64
		AvoidedCo2eKg    float64
		Kwh              float64
		WaterLiters      float64
		WaterSavedLiters float64
		WasteKg          float64
		WasteDiverted    float64
	}
	if err := uc.DB.Model(&models.DaySession{}).
		Select("COUNT(*) as days_tracked, COALESCE(SUM(co2e_kg),0) as co2e_kg, COALESCE(SUM(avoided_co2e_kg),0) as avoided_co2e_kg, COALESCE(SUM(kwh),0) as kwh, COALESCE(SUM(water_liters),0) as water_liters, COALESCE(SUM(water_saved_liters),0) as water_saved_liters, COALESCE(SUM(waste_kg),0) as waste_kg, COALESCE(SUM(waste_diverted),0) as waste_diverted").
		Where("user_id = ?", user.UserID).
		Scan(&lifetime).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats", "success": false})
		return
	}

	var dates []string
	if err := uc.DB.Model(&models.DaySession{}).
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
			"totalPoints": dbUser.TotalPoints,
			"streakDays":  types.CurrentStreak(dates, time.Now()),
			"daysTracked": lifetime.DaysTracked,
			"lifetime": gin.H{
				"co2eKg":           lifetime.Co2eKg,
				"avoidedCo2eKg":    lifetime.AvoidedCo2eKg,
				"kwh":              lifetime.Kwh,
				"waterLiters":      lifetime.WaterLiters,
				"waterSavedLiters": lifetime.WaterSavedLiters,
				"wasteKg":          lifetime.WasteKg,
				"wasteDiverted":    lifetime.WasteDiverted,
			},
		},
	})
}

// GetTopUsers godoc
// @Summary Green points leaderboard
// @Tags users
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /users/top [get]
func (uc *UserController) GetTopUsers(c *gin.Context) {
	var query TopUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	offset := (query.Page - 1) * query.PageSize

	var users []models.User
	if err := uc.DB.
		Order("total_points DESC").
		Offset(offset).
		Limit(query.PageSize).
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard", "success": false})
		return
	}

	var totalItems int64
	if err := uc.DB.Model(&models.User{}).Count(&totalItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard", "success": false})
		return
	}

	entries := make([]gin.H, 0, len(users))
	for i, u := range users {
		entries = append(entries, gin.H{
			"rank":        offset + i + 1,
			"username":    u.Username,
			"firstName":   u.FirstName,
			"lastName":    u.LastName,
			"avatar":      u.Avatar,
			"totalPoints": u.TotalPoints,
		})
	}

	totalPages := int((totalItems + int64(query.PageSize) - 1) / int64(query.PageSize))

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    entries,
		Pagination: &PaginationMeta{
			CurrentPage: query.Page,
			PageSize:    query.PageSize,
			TotalItems:  totalItems,
			TotalPages:  totalPages,
		},
	})
}
