package handlers

import (
	"errors"
	"net/http"

	"github.com/tanphat181203/Travel-BE-sub000/database"
	"github.com/tanphat181203/Travel-BE-sub000/models"
	"github.com/tanphat181203/Travel-BE-sub000/services"
	"github.com/tanphat181203/Travel-BE-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateBooking(c *gin.Context) {
	claims, err := utils.VerifyJWT(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	userID, err := utils.UserIDFromClaims(claims)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId in token"})
		return
	}

	var input struct {
		DepartureID string `json:"departure_id" binding:"required"`
		NumAdults   int    `json:"num_adults" binding:"required,min=1"`
		NumChildren int    `json:"num_children"`
		NumToddlers int    `json:"num_toddlers"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	departureID, err := uuid.Parse(input.DepartureID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid departure ID"})
		return
	}

	booking, err := services.CreateBooking(c.Request.Context(), database.GORM_DB, services.BookingInput{
		DepartureID: departureID,
		UserID:      userID,
		NumAdults:   input.NumAdults,
		NumChildren: input.NumChildren,
		NumToddlers: input.NumToddlers,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDepartureNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrDepartureUnavailable), errors.Is(err, services.ErrDepartureFull):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case services.IsValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	PublishBookingCreated(booking)

	c.JSON(http.StatusCreated, booking)
}

func CancelBooking(c *gin.Context) {
	claims, err := utils.VerifyJWT(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	userID, err := utils.UserIDFromClaims(claims)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId in token"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	booking, err := services.CancelBooking(c.Request.Context(), database.GORM_DB, bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrBookingCancelled):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

func GetMyBookings(c *gin.Context) {
	claims, err := utils.VerifyJWT(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	userID, err := utils.UserIDFromClaims(claims)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId in token"})
		return
	}

	pagination := utils.GetPagination(c)

	var total int64
	database.GORM_DB.Model(&models.Booking{}).Where("user_id = ?", userID).Count(&total)

	var bookings []models.Booking
	if err := database.GORM_DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Skip).
		Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings":   bookings,
		"pagination": utils.BuildEnvelope(pagination, total),
	})
}
