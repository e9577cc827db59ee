package models

import (
	"time"

	"github.com/google/uuid"
)

type Promotion struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TourID          uuid.UUID `json:"tour_id" gorm:"type:uuid;not null;index"`
	DiscountPercent float64   `json:"discount_percent" gorm:"not null"`
	StartDate       time.Time `json:"start_date" gorm:"type:date;not null"`
	EndDate         time.Time `json:"end_date" gorm:"type:date;not null"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"created_at"`
}
