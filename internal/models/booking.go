package models

import (
	"time"

	"gorm.io/datatypes"
)

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// PriceBreakdown is computed once at creation and never recomputed on read.
// Total is always the sum of the stored Room and Tax components.
type PriceBreakdown struct {
	Room  float64 `gorm:"column:price_room;not null" json:"room"`
	Tax   float64 `gorm:"column:price_tax;not null" json:"tax"`
	Total float64 `gorm:"column:price_total;not null" json:"total"`
}

type ContactInfo struct {
	Title string `json:"title"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Booking struct {
	ID          uint                            `gorm:"primaryKey" json:"id"`
	Reference   string                          `gorm:"type:varchar(36);uniqueIndex;not null" json:"reference"`
	UserID      uint                            `gorm:"not null;index" json:"user_id"`
	RoomID      uint                            `gorm:"not null;index" json:"room_id"`
	CheckIn     time.Time                       `gorm:"not null" json:"check_in"`
	CheckOut    time.Time                       `gorm:"not null" json:"check_out"`
	Guests      int                             `gorm:"not null" json:"guests"`
	Price       PriceBreakdown                  `gorm:"embedded" json:"price"`
	ContactInfo datatypes.JSONType[ContactInfo] `json:"contact_info"`
	Status      BookingStatus                   `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	CreatedAt   time.Time                       `json:"created_at"`
	UpdatedAt   time.Time                       `json:"updated_at"`

	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}
