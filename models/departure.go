package models

import (
	"time"

	"github.com/google/uuid"
)

type Departure struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TourID       uuid.UUID `json:"tour_id" gorm:"type:uuid;not null;index"`
	StartDate    time.Time `json:"start_date" gorm:"type:date;not null"`
	AdultPrice   float64   `json:"adult_price" gorm:"not null"`
	ChildPrice   float64   `json:"child_price"`
	ToddlerPrice float64   `json:"toddler_price"`
	Availability bool      `json:"availability" gorm:"default:true"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}
