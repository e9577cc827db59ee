package handlers

import (
	"encoding/json"
	"log"

	"github.com/tanphat181203/Travel-BE-sub000/models"

	"github.com/nats-io/nats.go"
)

// NatsConn is set from main when a NATS URL is configured; publishing is a
// no-op otherwise.
var NatsConn *nats.Conn

func PublishBookingCreated(booking models.Booking) {
	if NatsConn == nil {
		return
	}

	event := map[string]interface{}{
		"bookingId":   booking.ID,
		"departureId": booking.DepartureID,
		"userId":      booking.UserID,
		"seats":       booking.Seats(),
		"totalPrice":  booking.TotalPrice,
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal booking event: %v", err)
		return
	}

	if err := NatsConn.Publish("booking_created", data); err != nil {
		log.Printf("Failed to publish booking_created: %v", err)
	}
}
