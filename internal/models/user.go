package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email string `gorm:"size:255;uniqueIndex:uniq_users_email;not null" json:"email"`
	Name  string `gorm:"size:100;not null" json:"name"`

	// 11 digits, leading 7 or 8. Also the login identifier.
	Phone string `gorm:"size:11;uniqueIndex:uniq_users_phone;not null" json:"phone"`

	PasswordHash string   `gorm:"size:255;not null" json:"-"`
	Roles        []string `gorm:"serializer:json" json:"roles"`

	Bookings []Booking `gorm:"foreignKey:UserID" json:"bookings,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
