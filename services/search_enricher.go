package services

import (
	"time"

	"github.com/tanphat181203/Travel-BE-sub000/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Stored timestamps are timezone-naive; they are always displayed in one
// canonical zone.
var displayLocation = mustLoadDisplayLocation()

func mustLoadDisplayLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		return time.FixedZone("ICT", 7*60*60)
	}
	return loc
}

// FormatDisplayDate renders a stored timestamp as YYYY-MM-DD in the display
// timezone.
func FormatDisplayDate(t time.Time) string {
	return t.In(displayLocation).Format("2006-01-02")
}

// TourRow is the scan target for one deduplicated search row.
type TourRow struct {
	ID                uuid.UUID      `gorm:"column:id"`
	SellerID          uuid.UUID      `gorm:"column:seller_id"`
	Title             string         `gorm:"column:title"`
	Duration          string         `gorm:"column:duration"`
	DepartureLocation string         `gorm:"column:departure_location"`
	Destinations      pq.StringArray `gorm:"column:destinations;type:text[]"`
	Region            int            `gorm:"column:region"`
	MaxParticipants   int            `gorm:"column:max_participants"`
	Availability      bool           `gorm:"column:availability"`
	DepartureID       uuid.UUID      `gorm:"column:departure_id"`
	StartDate         time.Time      `gorm:"column:start_date"`
	AdultPrice        float64        `gorm:"column:adult_price"`
	DaysFromTarget    *int           `gorm:"column:days_from_target"`
}

// TourResult is one enriched search row as serialized to clients.
type TourResult struct {
	ID                 uuid.UUID          `json:"id"`
	SellerID           uuid.UUID          `json:"seller_id"`
	Title              string             `json:"title"`
	Duration           string             `json:"duration"`
	DepartureLocation  string             `json:"departure_location"`
	Destinations       []string           `json:"destinations"`
	Region             int                `json:"region"`
	MaxParticipants    int                `json:"max_participants"`
	DepartureID        uuid.UUID          `json:"departure_id"`
	StartDate          string             `json:"start_date"`
	AdultPrice         float64            `json:"adult_price"`
	DaysFromTarget     *int               `json:"days_from_target,omitempty"`
	Images             []models.TourImage `json:"images"`
	NextDepartureID    *uuid.UUID         `json:"next_departure_id,omitempty"`
	NextDeparturePrice *float64           `json:"next_departure_price,omitempty"`
	NextDepartureDate  *string            `json:"next_departure_date,omitempty"`
}

type nextDepartureRow struct {
	TourID     uuid.UUID `gorm:"column:tour_id"`
	ID         uuid.UUID `gorm:"column:id"`
	StartDate  time.Time `gorm:"column:start_date"`
	AdultPrice float64   `gorm:"column:adult_price"`
}

// EnrichTours attaches images and next-upcoming-departure metadata to search
// rows and formats their dates for display. Rows are neither added nor
// removed. Both lookups are batched over the result id-set.
func EnrichTours(db *gorm.DB, rows []TourRow) ([]TourResult, error) {
	results := make([]TourResult, 0, len(rows))
	if len(rows) == 0 {
		return results, nil
	}

	tourIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		tourIDs = append(tourIDs, row.ID)
	}

	var images []models.TourImage
	if err := db.Where("tour_id IN ?", tourIDs).
		Order("is_cover DESC, uploaded_at DESC").
		Find(&images).Error; err != nil {
		return nil, err
	}
	imagesByTour := GroupImagesByTour(images)

	var nextRows []nextDepartureRow
	if err := db.Raw(`SELECT DISTINCT ON (tour_id) tour_id, id, start_date, adult_price
FROM departures
WHERE tour_id IN ? AND availability = TRUE AND start_date >= CURRENT_DATE
ORDER BY tour_id, start_date ASC`, tourIDs).Scan(&nextRows).Error; err != nil {
		return nil, err
	}
	nextByTour := make(map[uuid.UUID]nextDepartureRow, len(nextRows))
	for _, n := range nextRows {
		nextByTour[n.TourID] = n
	}

	for _, row := range rows {
		result := TourResult{
			ID:                row.ID,
			SellerID:          row.SellerID,
			Title:             row.Title,
			Duration:          row.Duration,
			DepartureLocation: row.DepartureLocation,
			Destinations:      row.Destinations,
			Region:            row.Region,
			MaxParticipants:   row.MaxParticipants,
			DepartureID:       row.DepartureID,
			StartDate:         FormatDisplayDate(row.StartDate),
			AdultPrice:        row.AdultPrice,
			DaysFromTarget:    row.DaysFromTarget,
			Images:            imagesByTour[row.ID],
		}
		if next, ok := nextByTour[row.ID]; ok && row.Availability {
			id := next.ID
			price := next.AdultPrice
			date := FormatDisplayDate(next.StartDate)
			result.NextDepartureID = &id
			result.NextDeparturePrice = &price
			result.NextDepartureDate = &date
		}
		results = append(results, result)
	}

	return results, nil
}

// GroupImagesByTour buckets an is_cover/uploaded_at ordered image list by
// tour, preserving order within each bucket.
func GroupImagesByTour(images []models.TourImage) map[uuid.UUID][]models.TourImage {
	grouped := make(map[uuid.UUID][]models.TourImage)
	for _, img := range images {
		grouped[img.TourID] = append(grouped[img.TourID], img)
	}
	return grouped
}
