package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	DepartureID uuid.UUID     `json:"departure_id" gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index"`
	NumAdults   int           `json:"num_adults" gorm:"not null"`
	NumChildren int           `json:"num_children"`
	NumToddlers int           `json:"num_toddlers"`
	Status      BookingStatus `json:"status" gorm:"type:varchar(20);not null"`
	TotalPrice  float64       `json:"total_price"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Seats is the number of capacity slots the booking occupies.
// Toddlers do not take a seat.
func (b Booking) Seats() int {
	return b.NumAdults + b.NumChildren
}
