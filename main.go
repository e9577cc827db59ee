package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/tanphat181203/Travel-BE-sub000/database"
	"github.com/tanphat181203/Travel-BE-sub000/handlers"
	"github.com/tanphat181203/Travel-BE-sub000/opentelemetery"
	"github.com/tanphat181203/Travel-BE-sub000/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
)

func main() {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		err := godotenv.Load(".env")
		if err != nil {
			log.Println(err)
		}
		connStr = os.Getenv("DATABASE_URL")
	}

	database.Connect(connStr)

	ctx := context.Background()
	if err := opentelemetery.Init(ctx); err != nil {
		log.Println("Tracing disabled:", err)
	}
	defer opentelemetery.Shutdown(ctx)

	if natsURL := os.Getenv("NATS_URL"); natsURL != "" {
		var natsConn *nats.Conn
		var err error
		for i := 0; i < 10; i++ {
			natsConn, err = nats.Connect(natsURL)
			if err == nil {
				break
			}
			log.Printf("Waiting for NATS to be ready... (%v)", err)
			time.Sleep(2 * time.Second)
		}
		if err != nil {
			log.Fatalf("Failed to connect to NATS after retries: %v", err)
		}
		defer natsConn.Close()
		handlers.NatsConn = natsConn
	}

	stop := make(chan struct{})
	defer close(stop)
	services.StartDepartureScheduler(database.GORM_DB, time.Hour, stop)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")

	api.GET("/tours/search", handlers.SearchTours)
	api.GET("/tours/:tourId", handlers.GetTour)
	api.GET("/tours/:tourId/departures", handlers.GetDeparturesByTourId)
	api.GET("/tours/:tourId/promotions", handlers.GetPromotionsByTourId)

	api.POST("/tours", handlers.CreateTour)
	api.PUT("/tours/:tourId", handlers.UpdateTour)
	api.DELETE("/tours/:tourId", handlers.DeleteTour)
	api.PATCH("/tours/:tourId/availability", handlers.SetTourAvailability)
	api.POST("/tours/:tourId/images", handlers.AddTourImage)
	api.POST("/tours/:tourId/promotions", handlers.CreatePromotion)

	api.POST("/departures", handlers.CreateDeparture)
	api.PUT("/departures/:id", handlers.UpdateDeparture)
	api.DELETE("/departures/:id", handlers.DeleteDeparture)
	api.DELETE("/promotions/:id", handlers.DeletePromotion)

	api.POST("/bookings", handlers.CreateBooking)
	api.PUT("/bookings/:id/cancel", handlers.CancelBooking)
	api.GET("/bookings", handlers.GetMyBookings)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
