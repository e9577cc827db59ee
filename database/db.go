package database

import (
	"log"

	"github.com/tanphat181203/Travel-BE-sub000/models"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var GORM_DB *gorm.DB

func Connect(connStr string) {
	if connStr == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := db.AutoMigrate(&models.Tour{}, &models.Departure{}, &models.TourImage{}, &models.Booking{}, &models.Promotion{}); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	if err := db.Use(otelgorm.NewPlugin()); err != nil {
		log.Fatal("Failed to use otelgorm: ", err)
	}

	GORM_DB = db
}
