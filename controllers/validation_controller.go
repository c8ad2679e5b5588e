package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eco-track/api-go/models"
)

type ValidationController struct {
	DB *gorm.DB
}

func NewValidationController(db *gorm.DB) *ValidationController {
	return &ValidationController{DB: db}
}

func (vc *ValidationController) ValidateUsername(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	result := vc.DB.Where("username = ?", username).First(&user)

	switch {
	case result.Error == nil:
		c.JSON(http.StatusOK, gin.H{"exists": true})
	case result.Error == gorm.ErrRecordNotFound:
		c.JSON(http.StatusOK, gin.H{"exists": false})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check username"})
	}
}

func (vc *ValidationController) ValidateEmail(c *gin.Context) {
	email := c.Param("email")

	var user models.User
	result := vc.DB.Where("email = ?", email).First(&user)

	switch {
	case result.Error == nil:
		c.JSON(http.StatusOK, gin.H{"exists": true})
	case result.Error == gorm.ErrRecordNotFound:
		c.JSON(http.StatusOK, gin.H{"exists": false})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check email"})
	}
}
