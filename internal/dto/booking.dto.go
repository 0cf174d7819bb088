package dto

import (
	"time"

	"github.com/kvartirnik/house-booking/internal/models"
)

// TimeLayout is the wire format for every timestamp the API returns.
const TimeLayout = "2006-01-02 15:04:05"

type BookingDTO struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	HouseID   uint   `json:"house_id"`
	Comment   string `json:"comment"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

func NewBookingDTO(b *models.Booking) BookingDTO {
	return BookingDTO{
		ID:        b.ID,
		UserID:    b.UserID,
		HouseID:   b.HouseID,
		Comment:   b.Comment,
		Status:    b.Status,
		CreatedAt: FormatTime(b.CreatedAt),
	}
}

func NewBookingDTOs(bookings []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, NewBookingDTO(&bookings[i]))
	}
	return out
}

func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}
