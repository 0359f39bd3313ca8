package database

import (
	"log"

	"github.com/nattcha/hotel-booking-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Room{}, &models.Booking{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Covering index for the overlap range scan on booking creation
	db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_room_status_dates
		ON bookings (room_id, status, check_in, check_out)
	`)

	return db
}
