package dto

import (
	"fmt"
	"time"

	"github.com/nattcha/hotel-booking-service/internal/models"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateBookingRequest accepts both "room" and "roomId" for the room
// reference. Price is optional; when present it is stored as supplied.
type CreateBookingRequest struct {
	Room        uint                   `json:"room"`
	RoomID      uint                   `json:"roomId"`
	CheckIn     string                 `json:"checkIn"`
	CheckOut    string                 `json:"checkOut"`
	Guests      int                    `json:"guests"`
	ContactInfo models.ContactInfo     `json:"contactInfo"`
	Price       *models.PriceBreakdown `json:"price,omitempty"`
}

func (r *CreateBookingRequest) ResolveRoomID() uint {
	if r.Room != 0 {
		return r.Room
	}
	return r.RoomID
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate accepts RFC3339 timestamps or plain YYYY-MM-DD dates.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
