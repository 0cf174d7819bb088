package models

import "time"

type House struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:255;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2)" json:"price"`

	// Single source of truth for bookability. Flipped to false
	// inside the booking transaction, never back.
	IsAvailable bool `gorm:"default:true" json:"is_available"`

	Bookings []Booking `gorm:"foreignKey:HouseID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
