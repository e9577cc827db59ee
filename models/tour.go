package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Tour struct {
	ID                uuid.UUID      `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	SellerID          uuid.UUID      `json:"seller_id" gorm:"type:uuid;not null;index"`
	Title             string         `json:"title" gorm:"not null"`
	Duration          string         `json:"duration"`
	DepartureLocation string         `json:"departure_location"`
	Destinations      pq.StringArray `json:"destinations" gorm:"type:text[]"`
	Region            int            `json:"region" gorm:"index"`
	Itinerary         datatypes.JSON `json:"itinerary" gorm:"type:jsonb"`
	MaxParticipants   int            `json:"max_participants"`
	Availability      bool           `json:"availability" gorm:"default:true"`
	IsDeleted         bool           `json:"is_deleted" gorm:"default:false"`
	DeletedAt         *time.Time     `json:"deleted_at"`
	Embedding         datatypes.JSON `json:"-" gorm:"type:jsonb"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// ItineraryDay is one entry of the Itinerary jsonb column.
type ItineraryDay struct {
	DayNumber   int    `json:"day_number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
