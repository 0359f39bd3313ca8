package dto

import (
	"time"

	"github.com/nattcha/hotel-booking-service/internal/models"
)

// SuccessResponse is the success-side envelope; errors use the fail envelope
// emitted by the error handler.
type SuccessResponse struct {
	Status  string `json:"status"`
	Results int    `json:"results,omitempty"`
	Data    any    `json:"data"`
}

func Success(data any) SuccessResponse {
	return SuccessResponse{Status: "success", Data: data}
}

func SuccessList(results int, data any) SuccessResponse {
	return SuccessResponse{Status: "success", Results: results, Data: data}
}

type AuthResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
	Data   any    `json:"data"`
}

// RoomSummary is the read-time expansion of a booking's room reference.
type RoomSummary struct {
	ID     uint     `json:"id"`
	Title  string   `json:"title"`
	Price  float64  `json:"price"`
	Images []string `json:"images"`
}

type BookingResponse struct {
	ID          uint                  `json:"id"`
	Reference   string                `json:"reference"`
	UserID      uint                  `json:"user_id"`
	Room        *RoomSummary          `json:"room,omitempty"`
	RoomID      uint                  `json:"room_id"`
	CheckIn     time.Time             `json:"check_in"`
	CheckOut    time.Time             `json:"check_out"`
	Guests      int                   `json:"guests"`
	Price       models.PriceBreakdown `json:"price"`
	ContactInfo models.ContactInfo    `json:"contact_info"`
	Status      models.BookingStatus  `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
}

type AvailabilityResponse struct {
	IsAvailable bool   `json:"isAvailable"`
	RoomID      uint   `json:"roomId"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:          b.ID,
		Reference:   b.Reference,
		UserID:      b.UserID,
		RoomID:      b.RoomID,
		CheckIn:     b.CheckIn,
		CheckOut:    b.CheckOut,
		Guests:      b.Guests,
		Price:       b.Price,
		ContactInfo: b.ContactInfo.Data(),
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
	if b.Room != nil {
		resp.Room = &RoomSummary{
			ID:     b.Room.ID,
			Title:  b.Room.Title,
			Price:  b.Room.Price,
			Images: b.Room.Images,
		}
	}
	return resp
}
