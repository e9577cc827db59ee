package services

import (
	"context"
	"errors"
	"time"

	"github.com/tanphat181203/Travel-BE-sub000/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDepartureNotFound    = errors.New("departure not found")
	ErrDepartureUnavailable = errors.New("departure is not available for booking")
	ErrDepartureFull        = errors.New("departure does not have enough remaining capacity")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingCancelled     = errors.New("booking is already cancelled")
)

type BookingInput struct {
	DepartureID uuid.UUID
	UserID      uuid.UUID
	NumAdults   int
	NumChildren int
	NumToddlers int
}

// RemainingCapacity is the number of seats still bookable on a departure.
func RemainingCapacity(maxParticipants, bookedSeats int) int {
	remaining := maxParticipants - bookedSeats
	if remaining < 0 {
		return 0
	}
	return remaining
}

// BookingPrice computes the total for a seat breakdown at a departure's
// price tiers, with an optional percentage discount applied.
func BookingPrice(dep models.Departure, adults, children, toddlers int, discountPercent float64) float64 {
	price := float64(adults)*dep.AdultPrice +
		float64(children)*dep.ChildPrice +
		float64(toddlers)*dep.ToddlerPrice
	if discountPercent > 0 {
		price = price * (1 - discountPercent/100)
	}
	return price
}

// CreateBooking inserts a booking inside one transaction holding a row lock
// on the departure, so two concurrent bookings cannot both pass the capacity
// check. The departure is flipped unavailable once the last seat is taken.
func CreateBooking(ctx context.Context, db *gorm.DB, input BookingInput) (models.Booking, error) {
	seats := input.NumAdults + input.NumChildren
	if input.NumAdults < 1 || input.NumChildren < 0 || input.NumToddlers < 0 {
		return models.Booking{}, newValidationError("booking requires at least one adult and no negative counts")
	}

	var booking models.Booking
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dep models.Departure
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&dep, "id = ?", input.DepartureID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDepartureNotFound
			}
			return err
		}
		if !dep.Availability {
			return ErrDepartureUnavailable
		}

		var tour models.Tour
		if err := tx.First(&tour, "id = ?", dep.TourID).Error; err != nil {
			return err
		}
		if !tour.Availability || tour.IsDeleted {
			return ErrDepartureUnavailable
		}

		var booked int
		if err := tx.Model(&models.Booking{}).
			Where("departure_id = ? AND status = ?", dep.ID, models.BookingConfirmed).
			Select("COALESCE(SUM(num_adults + num_children), 0)").
			Scan(&booked).Error; err != nil {
			return err
		}
		if seats > RemainingCapacity(tour.MaxParticipants, booked) {
			return ErrDepartureFull
		}

		var discount float64
		var promo models.Promotion
		if err := tx.Where("tour_id = ? AND start_date <= CURRENT_DATE AND end_date >= CURRENT_DATE", dep.TourID).
			Order("discount_percent DESC").
			First(&promo).Error; err == nil {
			discount = promo.DiscountPercent
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		booking = models.Booking{
			DepartureID: dep.ID,
			UserID:      input.UserID,
			NumAdults:   input.NumAdults,
			NumChildren: input.NumChildren,
			NumToddlers: input.NumToddlers,
			Status:      models.BookingConfirmed,
			TotalPrice:  BookingPrice(dep, input.NumAdults, input.NumChildren, input.NumToddlers, discount),
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		if booked+seats >= tour.MaxParticipants {
			dep.Availability = false
			if err := tx.Save(&dep).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// CancelBooking marks a user's booking cancelled and frees capacity, turning
// the departure back on when it had been filled and has not departed yet.
func CancelBooking(ctx context.Context, db *gorm.DB, bookingID, userID uuid.UUID) (models.Booking, error) {
	var booking models.Booking
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, "id = ? AND user_id = ?", bookingID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if booking.Status == models.BookingCancelled {
			return ErrBookingCancelled
		}

		var dep models.Departure
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&dep, "id = ?", booking.DepartureID).Error; err != nil {
			return err
		}

		booking.Status = models.BookingCancelled
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		if !dep.Availability && !departed(dep) {
			dep.Availability = true
			if err := tx.Save(&dep).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

func departed(dep models.Departure) bool {
	today := time.Now().In(displayLocation).Format("2006-01-02")
	return dep.StartDate.Format("2006-01-02") < today
}
