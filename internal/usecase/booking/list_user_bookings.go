package booking

import (
	"context"

	domain "github.com/kvartirnik/house-booking/internal/domain/booking"
	"github.com/kvartirnik/house-booking/internal/models"
)

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(repo domain.Repository) *ListUserBookings {
	return &ListUserBookings{repo: repo}
}

func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsForUser(ctx, userID)
}
