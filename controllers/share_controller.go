package controllers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/eco-track/api-go/config"
	"github.com/eco-track/api-go/models"
	"github.com/eco-track/api-go/types"
	"github.com/eco-track/api-go/utils"
)

// ShareController exports period summaries to R2 object storage so users can
// hand out a public link without the recipient needing an account.
type ShareController struct {
	DB       *gorm.DB
	R2Client *s3.Client
	R2Config *config.R2Config
}

type CreateShareRequest struct {
	Period string `json:"period" binding:"required,oneof=week month"`
}

// shareDocument is the JSON body uploaded to object storage.
type shareDocument struct {
	Username   string             `json:"username"`
	Ledger     types.LedgerPeriod `json:"ledger"`
	Highlights []string           `json:"highlights"`
	SharedAt   time.Time          `json:"sharedAt"`
}

func NewShareController(db *gorm.DB) *ShareController {
	r2Config := config.GetR2Config()

	r2Client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2Config.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			r2Config.AccessKeyID,
			r2Config.SecretAccessKey,
			"",
		),
		Region: r2Config.Region,
	})

	return &ShareController{
		DB:       db,
		R2Client: r2Client,
		R2Config: r2Config,
	}
}

// CreateShare godoc
// @Summary Share a period summary
// @Description Builds the period ledger, uploads it as a JSON document to object storage and returns the public URL
// @Tags ledger
// @Accept json
// @Produce json
// @Success 201 {object} StandardResponse
// @Router /ledger/share [post]
func (shc *ShareController) CreateShare(c *gin.Context) {
	user := utils.GetUser(c)

	var req CreateShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var dbUser models.User
	if err := shc.DB.First(&dbUser, user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	ledger, err := buildLedger(shc.DB, user.UserID, req.Period, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary", "success": false})
		return
	}

	highlights := shareHighlights(ledger)
	doc := shareDocument{
		Username:   dbUser.Username,
		Ledger:     ledger,
		Highlights: highlights,
		SharedAt:   time.Now(),
	}

	body, err := json.Marshal(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render summary", "success": false})
		return
	}

	key := shc.generateShareKey(user.UserID)
	if err := shc.putObject(key, body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload summary", "success": false})
		return
	}

	report := models.ShareReport{
		UserID:     user.UserID,
		PeriodType: req.Period,
		StartDate:  ledger.StartDate,
		EndDate:    ledger.EndDate,
		ObjectKey:  key,
		PublicURL:  fmt.Sprintf("%s/%s", shc.R2Config.PublicURL, key),
		Highlights: highlights,
		SharedAt:   doc.SharedAt,
	}
	if err := shc.DB.Create(&report).Error; err != nil {
		// The object is orphaned if the row fails; best effort cleanup.
		_ = shc.deleteObject(key)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record share", "success": false})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    report,
		Message: "Summary shared successfully",
	})
}

// ListShares godoc
// @Summary List the caller's share links
// @Tags ledger
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /ledger/share [get]
func (shc *ShareController) ListShares(c *gin.Context) {
	user := utils.GetUser(c)

	var reports []models.ShareReport
	if err := shc.DB.Where("user_id = ?", user.UserID).Order("created_at DESC").Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shares", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    reports,
	})
}

// DeleteShare godoc
// @Summary Revoke a share link
// @Tags ledger
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /ledger/share/{id} [delete]
func (shc *ShareController) DeleteShare(c *gin.Context) {
	user := utils.GetUser(c)
	shareID := c.Param("id")

	var report models.ShareReport
	if err := shc.DB.Where("id = ? AND user_id = ?", shareID, user.UserID).First(&report).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Share not found", "success": false})
		return
	}

	if err := shc.deleteObject(report.ObjectKey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove shared document", "success": false})
		return
	}

	if err := shc.DB.Delete(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete share", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Message: "Share revoked successfully",
	})
}

func shareHighlights(ledger types.LedgerPeriod) []string {
	highlights := []string{
		fmt.Sprintf("%.1f kg CO2e avoided over %d tracked days", ledger.Totals.AvoidedCo2eKg, ledger.DaysTracked),
		fmt.Sprintf("Average daily score %.0f", ledger.AverageDailyScore),
	}
	if len(ledger.TopCategories) > 0 {
		top := ledger.TopCategories[0]
		highlights = append(highlights, fmt.Sprintf("Biggest footprint category: %s (%.1f kg CO2e)", top.Category, top.Co2eKg))
	}
	if ledger.Totals.WasteDiverted > 0 {
		highlights = append(highlights, fmt.Sprintf("%.0f items diverted from landfill", ledger.Totals.WasteDiverted))
	}
	return highlights
}

func (shc *ShareController) generateShareKey(userID uint) string {
	return fmt.Sprintf("shares/%d/%d_%s.json", userID, time.Now().Unix(), uuid.New().String())
}

func (shc *ShareController) putObject(key string, body []byte) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(shc.R2Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}

	_, err := shc.R2Client.PutObject(context.TODO(), input)
	return err
}

func (shc *ShareController) deleteObject(key string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(shc.R2Config.BucketName),
		Key:    aws.String(key),
	}

	_, err := shc.R2Client.DeleteObject(context.TODO(), input)
	return err
}
