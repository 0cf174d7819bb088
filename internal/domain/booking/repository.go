package booking

import (
	"context"

	"github.com/kvartirnik/house-booking/internal/models"
)

type Repository interface {
	// -------- House --------
	GetHouseByID(
		ctx context.Context,
		id uint,
	) (*models.House, error)

	ListAvailableHouses(
		ctx context.Context,
	) ([]models.House, error)

	// -------- Booking (create) --------

	// BookHouse persists the booking and flips the house
	// availability off in a single transaction. The availability
	// re-check runs under a row lock on the house, so of two
	// concurrent callers only the first committer wins.
	BookHouse(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (read / update) --------
	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)
}
