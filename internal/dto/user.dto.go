package dto

import "github.com/kvartirnik/house-booking/internal/models"

type UserDTO struct {
	ID        uint         `json:"id"`
	Email     string       `json:"email"`
	Name      string       `json:"name"`
	Phone     string       `json:"phone"`
	Roles     []string     `json:"roles"`
	Bookings  []BookingDTO `json:"bookings"`
	CreatedAt string       `json:"created_at"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Roles:     u.Roles,
		Bookings:  NewBookingDTOs(u.Bookings),
		CreatedAt: FormatTime(u.CreatedAt),
	}
}
