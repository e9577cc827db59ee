package handlers

import (
	"net/http"
	"time"

	"github.com/tanphat181203/Travel-BE-sub000/database"
	"github.com/tanphat181203/Travel-BE-sub000/models"
	"github.com/tanphat181203/Travel-BE-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreatePromotion(c *gin.Context) {
	tour, ok := ownedTour(c)
	if !ok {
		return
	}

	var input struct {
		DiscountPercent float64 `json:"discount_percent" binding:"required,gt=0,lte=100"`
		StartDate       string  `json:"start_date" binding:"required"`
		EndDate         string  `json:"end_date" binding:"required"`
		Description     string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	endDate, err := time.Parse("2006-01-02", input.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
		return
	}
	if endDate.Before(startDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
		return
	}

	promotion := models.Promotion{
		TourID:          tour.ID,
		DiscountPercent: input.DiscountPercent,
		StartDate:       startDate,
		EndDate:         endDate,
		Description:     input.Description,
	}
	if err := database.GORM_DB.Create(&promotion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save promotion"})
		return
	}

	c.JSON(http.StatusCreated, promotion)
}

func GetPromotionsByTourId(c *gin.Context) {
	tourID, err := uuid.Parse(c.Param("tourId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour ID"})
		return
	}

	var promotions []models.Promotion
	if err := database.GORM_DB.Where("tour_id = ?", tourID).
		Order("start_date ASC").
		Find(&promotions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promotions"})
		return
	}

	c.JSON(http.StatusOK, promotions)
}

func DeletePromotion(c *gin.Context) {
	claims, err := utils.VerifyJWT(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if utils.RoleFromClaims(claims) != string(models.RoleSeller) {
		c.JSON(http.StatusForbidden, gin.H{"error": "seller role required"})
		return
	}
	sellerID, err := utils.UserIDFromClaims(claims)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId in token"})
		return
	}

	promotionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid promotion ID"})
		return
	}

	var promotion models.Promotion
	if err := database.GORM_DB.First(&promotion, "id = ?", promotionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Promotion not found"})
		return
	}

	var tour models.Tour
	if err := database.GORM_DB.First(&tour, "id = ?", promotion.TourID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tour not found"})
		return
	}
	if tour.SellerID != sellerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not the seller of this tour"})
		return
	}

	if err := database.GORM_DB.Delete(&models.Promotion{}, promotionID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete promotion"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Promotion deleted successfully"})
}
