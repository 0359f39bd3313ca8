package models

import (
	"time"

	"gorm.io/datatypes"
)

type Room struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Title       string                      `gorm:"not null" json:"title"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	Price       float64                     `gorm:"not null" json:"price"`
	Capacity    int                         `gorm:"not null" json:"capacity"`
	Images      datatypes.JSONSlice[string] `json:"images"`
	Features    datatypes.JSONSlice[string] `json:"features"`
	Available   bool                        `gorm:"not null;default:true" json:"available"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}
