package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tanphat181203/Travel-BE-sub000/database"
	"github.com/tanphat181203/Travel-BE-sub000/models"
	"github.com/tanphat181203/Travel-BE-sub000/rest_clients"
	"github.com/tanphat181203/Travel-BE-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type tourInput struct {
	Title             string                `json:"title" binding:"required"`
	Duration          string                `json:"duration" binding:"required"`
	DepartureLocation string                `json:"departure_location"`
	Destinations      []string              `json:"destinations"`
	Region            int                   `json:"region"`
	Itinerary         []models.ItineraryDay `json:"itinerary"`
	MaxParticipants   int                   `json:"max_participants" binding:"required,min=1"`
}

func CreateTour(c *gin.Context) {
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

	var input tourInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	itinerary, err := json.Marshal(input.Itinerary)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid itinerary"})
		return
	}

	tour := models.Tour{
		SellerID:          sellerID,
		Title:             input.Title,
		Duration:          input.Duration,
		DepartureLocation: input.DepartureLocation,
		Destinations:      input.Destinations,
		Region:            input.Region,
		Itinerary:         datatypes.JSON(itinerary),
		MaxParticipants:   input.MaxParticipants,
		Availability:      true,
	}

	if embedding := embedTour(input); embedding != nil {
		tour.Embedding = embedding
	}

	if err := database.GORM_DB.Create(&tour).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save tour"})
		return
	}

	c.JSON(http.StatusCreated, tour)
}

// embedTour fetches a vector for the tour text; failures only log, the tour
// is saved without an embedding.
func embedTour(input tourInput) datatypes.JSON {
	baseURL := os.Getenv("EMBEDDING_SERVICE_URL")
	if baseURL == "" {
		return nil
	}

	client := rest_clients.NewEmbeddingClient(baseURL)
	text := input.Title + " " + strings.Join(input.Destinations, " ")
	vector, err := client.EmbedText(text)
	if err != nil {
		log.Printf("Failed to embed tour %q: %v", input.Title, err)
		return nil
	}

	data, err := json.Marshal(vector)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}

func GetTour(c *gin.Context) {
	tourID, err := uuid.Parse(c.Param("tourId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour ID"})
		return
	}

	var tour models.Tour
	if err := database.GORM_DB.First(&tour, "id = ? AND is_deleted = FALSE", tourID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tour not found"})
		return
	}

	var images []models.TourImage
	database.GORM_DB.Where("tour_id = ?", tourID).
		Order("is_cover DESC, uploaded_at DESC").
		Find(&images)

	var departures []models.Departure
	database.GORM_DB.Where("tour_id = ? AND availability = TRUE AND start_date >= CURRENT_DATE", tourID).
		Order("start_date ASC").
		Find(&departures)

	var promotions []models.Promotion
	database.GORM_DB.Where("tour_id = ? AND end_date >= CURRENT_DATE", tourID).
		Order("start_date ASC").
		Find(&promotions)

	c.JSON(http.StatusOK, gin.H{
		"tour":       tour,
		"images":     images,
		"departures": departures,
		"promotions": promotions,
	})
}

func UpdateTour(c *gin.Context) {
	tour, ok := ownedTour(c)
	if !ok {
		return
	}

	var input struct {
		Title             *string               `json:"title"`
		Duration          *string               `json:"duration"`
		DepartureLocation *string               `json:"departure_location"`
		Destinations      []string              `json:"destinations"`
		Region            *int                  `json:"region"`
		Itinerary         []models.ItineraryDay `json:"itinerary"`
		MaxParticipants   *int                  `json:"max_participants"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title != nil {
		tour.Title = *input.Title
	}
	if input.Duration != nil {
		tour.Duration = *input.Duration
	}
	if input.DepartureLocation != nil {
		tour.DepartureLocation = *input.DepartureLocation
	}
	if input.Destinations != nil {
		tour.Destinations = input.Destinations
	}
	if input.Region != nil {
		tour.Region = *input.Region
	}
	if input.Itinerary != nil {
		itinerary, err := json.Marshal(input.Itinerary)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid itinerary"})
			return
		}
		tour.Itinerary = datatypes.JSON(itinerary)
	}
	if input.MaxParticipants != nil {
		if *input.MaxParticipants < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_participants must be at least 1"})
			return
		}
		tour.MaxParticipants = *input.MaxParticipants
	}

	if err := database.GORM_DB.Save(&tour).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tour"})
		return
	}

	c.JSON(http.StatusOK, tour)
}

// DeleteTour soft-deletes: bookings keep referencing the tour's departures.
func DeleteTour(c *gin.Context) {
	tour, ok := ownedTour(c)
	if !ok {
		return
	}

	now := time.Now()
	tour.IsDeleted = true
	tour.DeletedAt = &now
	tour.Availability = false

	if err := database.GORM_DB.Save(&tour).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tour"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tour deleted successfully"})
}

func SetTourAvailability(c *gin.Context) {
	tour, ok := ownedTour(c)
	if !ok {
		return
	}

	var input struct {
		Availability *bool `json:"availability" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "availability is required"})
		return
	}

	tour.Availability = *input.Availability
	if err := database.GORM_DB.Save(&tour).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update availability"})
		return
	}

	c.JSON(http.StatusOK, tour)
}

func AddTourImage(c *gin.Context) {
	tour, ok := ownedTour(c)
	if !ok {
		return
	}

	var input struct {
		URL     string `json:"url" binding:"required"`
		IsCover bool   `json:"is_cover"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image := models.TourImage{
		TourID:  tour.ID,
		URL:     input.URL,
		IsCover: input.IsCover,
	}
	// Demoting the old cover and inserting the new image happen in one
	// transaction so a failed insert never leaves the tour coverless.
	err := database.GORM_DB.Transaction(func(tx *gorm.DB) error {
		if input.IsCover {
			if err := tx.Model(&models.TourImage{}).
				Where("tour_id = ?", tour.ID).
				Update("is_cover", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&image).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}

	c.JSON(http.StatusCreated, image)
}

// ownedTour loads the path tour and checks the caller is its seller. On
// failure it writes the response and returns ok=false.
func ownedTour(c *gin.Context) (models.Tour, bool) {
	claims, err := utils.VerifyJWT(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return models.Tour{}, false
	}
	if utils.RoleFromClaims(claims) != string(models.RoleSeller) {
		c.JSON(http.StatusForbidden, gin.H{"error": "seller role required"})
		return models.Tour{}, false
	}
	sellerID, err := utils.UserIDFromClaims(claims)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId in token"})
		return models.Tour{}, false
	}

	tourID, err := uuid.Parse(c.Param("tourId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour ID"})
		return models.Tour{}, false
	}

	var tour models.Tour
	if err := database.GORM_DB.First(&tour, "id = ? AND is_deleted = FALSE", tourID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tour not found"})
		return models.Tour{}, false
	}

	if tour.SellerID != sellerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not the seller of this tour"})
		return models.Tour{}, false
	}

	return tour, true
}
