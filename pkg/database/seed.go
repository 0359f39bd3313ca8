package database

import (
	"fmt"
	"log"

	"github.com/nattcha/hotel-booking-service/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var sampleRooms = []models.Room{
	{
		Title:       "Deluxe King Room",
		Description: "Spacious room with king-sized bed, work desk, and city view. Features include air conditioning, free Wi-Fi, flat-screen TV, and private bathroom with premium amenities.",
		Price:       199,
		Capacity:    2,
		Images:      datatypes.NewJSONSlice([]string{"deluxe-king-1.jpg", "deluxe-king-2.jpg"}),
		Features:    datatypes.NewJSONSlice([]string{"King Bed", "City View", "Free Wi-Fi", "Air Conditioning", "Flat-screen TV", "Work Desk"}),
		Available:   true,
	},
	{
		Title:       "Premium Double Room",
		Description: "Comfortable room with two double beds, perfect for families or groups. Includes air conditioning, free Wi-Fi, flat-screen TV, and private bathroom.",
		Price:       249,
		Capacity:    4,
		Images:      datatypes.NewJSONSlice([]string{"premium-double-1.jpg", "premium-double-2.jpg"}),
		Features:    datatypes.NewJSONSlice([]string{"Two Double Beds", "Free Wi-Fi", "Air Conditioning", "Flat-screen TV", "Mini Fridge"}),
		Available:   true,
	},
	{
		Title:       "Executive Suite",
		Description: "Luxurious suite with separate living area, king-sized bed, and panoramic city views. Includes premium amenities, work space, and access to executive lounge.",
		Price:       349,
		Capacity:    2,
		Images:      datatypes.NewJSONSlice([]string{"executive-suite-1.jpg", "executive-suite-2.jpg"}),
		Features:    datatypes.NewJSONSlice([]string{"King Bed", "Separate Living Area", "Panoramic View", "Executive Lounge Access", "Premium Amenities", "Work Space"}),
		Available:   true,
	},
	{
		Title:       "Family Suite",
		Description: "Spacious suite with one king bed and two twin beds in separate rooms. Perfect for families with children. Includes all standard amenities plus kids welcome package.",
		Price:       399,
		Capacity:    4,
		Images:      datatypes.NewJSONSlice([]string{"family-suite-1.jpg", "family-suite-2.jpg"}),
		Features:    datatypes.NewJSONSlice([]string{"King Bed", "Two Twin Beds", "Separate Rooms", "Kids Welcome Package", "Mini Fridge", "Family Amenities"}),
		Available:   true,
	},
}

// Seed inserts sample rooms and a test user once per database lifetime,
// guarded by a row-count check so repeated startups are no-ops.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Room{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count rooms: %w", err)
	}
	if count > 0 {
		log.Printf("database already has %d rooms, skipping seed", count)
		return nil
	}

	if err := db.Create(&sampleRooms).Error; err != nil {
		return fmt.Errorf("insert sample rooms: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &models.User{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("insert test user: %w", err)
	}

	log.Println("database seeded with sample rooms and test user")
	return nil
}
