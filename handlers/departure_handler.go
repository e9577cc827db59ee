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

func CreateDeparture(c *gin.Context) {
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

	var input struct {
		TourID       string  `json:"tour_id" binding:"required"`
		StartDate    string  `json:"start_date" binding:"required"`
		AdultPrice   float64 `json:"adult_price" binding:"required,gt=0"`
		ChildPrice   float64 `json:"child_price"`
		ToddlerPrice float64 `json:"toddler_price"`
		Description  string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tourID, err := uuid.Parse(input.TourID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour ID"})
		return
	}
	startDate, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}

	var tour models.Tour
	if err := database.GORM_DB.First(&tour, "id = ? AND is_deleted = FALSE", tourID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tour not found"})
		return
	}
	if tour.SellerID != sellerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not the seller of this tour"})
		return
	}

	// One departure per (tour, start_date).
	var existing int64
	database.GORM_DB.Model(&models.Departure{}).
		Where("tour_id = ? AND start_date = ?", tourID, startDate).
		Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "A departure already exists for this tour on that date"})
		return
	}

	departure := models.Departure{
		TourID:       tourID,
		StartDate:    startDate,
		AdultPrice:   input.AdultPrice,
		ChildPrice:   input.ChildPrice,
		ToddlerPrice: input.ToddlerPrice,
		Availability: true,
		Description:  input.Description,
	}
	if err := database.GORM_DB.Create(&departure).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save departure"})
		return
	}

	c.JSON(http.StatusCreated, departure)
}

func GetDeparturesByTourId(c *gin.Context) {
	tourID, err := uuid.Parse(c.Param("tourId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour ID"})
		return
	}

	var departures []models.Departure
	if err := database.GORM_DB.Where("tour_id = ?", tourID).
		Order("start_date ASC").
		Find(&departures).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch departures"})
		return
	}

	c.JSON(http.StatusOK, departures)
}

func UpdateDeparture(c *gin.Context) {
	departure, ok := ownedDeparture(c)
	if !ok {
		return
	}

	var input struct {
		AdultPrice   *float64 `json:"adult_price"`
		ChildPrice   *float64 `json:"child_price"`
		ToddlerPrice *float64 `json:"toddler_price"`
		Availability *bool    `json:"availability"`
		Description  *string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.AdultPrice != nil {
		if *input.AdultPrice <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "adult_price must be positive"})
			return
		}
		departure.AdultPrice = *input.AdultPrice
	}
	if input.ChildPrice != nil {
		departure.ChildPrice = *input.ChildPrice
	}
	if input.ToddlerPrice != nil {
		departure.ToddlerPrice = *input.ToddlerPrice
	}
	if input.Availability != nil {
		departure.Availability = *input.Availability
	}
	if input.Description != nil {
		departure.Description = *input.Description
	}

	if err := database.GORM_DB.Save(&departure).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update departure"})
		return
	}

	c.JSON(http.StatusOK, departure)
}

func DeleteDeparture(c *gin.Context) {
	departure, ok := ownedDeparture(c)
	if !ok {
		return
	}

	var bookings int64
	database.GORM_DB.Model(&models.Booking{}).
		Where("departure_id = ?", departure.ID).
		Count(&bookings)
	if bookings > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Departure has bookings and cannot be deleted"})
		return
	}

	if err := database.GORM_DB.Delete(&models.Departure{}, departure.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete departure"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Departure deleted successfully"})
}

func ownedDeparture(c *gin.Context) (models.Departure, bool) {
	claims, err := utils.VerifyJWT(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return models.Departure{}, false
	}
	if utils.RoleFromClaims(claims) != string(models.RoleSeller) {
		c.JSON(http.StatusForbidden, gin.H{"error": "seller role required"})
		return models.Departure{}, false
	}
	sellerID, err := utils.UserIDFromClaims(claims)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId in token"})
		return models.Departure{}, false
	}

	departureID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid departure ID"})
		return models.Departure{}, false
	}

	var departure models.Departure
	if err := database.GORM_DB.First(&departure, "id = ?", departureID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Departure not found"})
		return models.Departure{}, false
	}

	var tour models.Tour
	if err := database.GORM_DB.First(&tour, "id = ?", departure.TourID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tour not found"})
		return models.Departure{}, false
	}
	if tour.SellerID != sellerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not the seller of this tour"})
		return models.Departure{}, false
	}

	return departure, true
}
