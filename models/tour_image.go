package models

import (
	"time"

	"github.com/google/uuid"
)

type TourImage struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TourID     uuid.UUID `json:"tour_id" gorm:"type:uuid;not null;index"`
	URL        string    `json:"url" gorm:"not null"`
	IsCover    bool      `json:"is_cover" gorm:"default:false"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}
