package services

import (
	"log"
	"time"

	"github.com/tanphat181203/Travel-BE-sub000/models"

	"gorm.io/gorm"
)

// MarkOverdueDepartures flips availability off for departures whose start
// date has passed. The update runs in its own transaction and rolls back on
// failure.
func MarkOverdueDepartures(db *gorm.DB) (int64, error) {
	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Departure{}).
			Where("availability = TRUE AND start_date < CURRENT_DATE").
			Update("availability", false)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

// StartDepartureScheduler runs MarkOverdueDepartures once immediately and
// then on every tick until stop is closed.
func StartDepartureScheduler(db *gorm.DB, interval time.Duration, stop <-chan struct{}) {
	run := func() {
		affected, err := MarkOverdueDepartures(db)
		if err != nil {
			log.Printf("Failed to mark overdue departures: %v", err)
			return
		}
		if affected > 0 {
			log.Printf("Marked %d overdue departures unavailable", affected)
		}
	}

	go func() {
		run()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				run()
			case <-stop:
				return
			}
		}
	}()
}
