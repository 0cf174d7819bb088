package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/kvartirnik/house-booking/internal/domain/booking"
	"github.com/kvartirnik/house-booking/internal/httperr"
	"github.com/kvartirnik/house-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// House
// --------------------------------------------------

func (r *BookingGormRepository) GetHouseByID(
	ctx context.Context,
	id uint,
) (*models.House, error) {

	var house models.House
	if err := r.db.WithContext(ctx).First(&house, id).Error; err != nil {
		return nil, err
	}
	return &house, nil
}

func (r *BookingGormRepository) ListAvailableHouses(
	ctx context.Context,
) ([]models.House, error) {

	var houses []models.House
	if err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("id ASC").
		Find(&houses).Error; err != nil {
		return nil, err
	}
	return houses, nil
}

// --------------------------------------------------
// Booking (create)
// --------------------------------------------------

func (r *BookingGormRepository) BookHouse(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var house models.House
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&house, b.HouseID).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.NotFoundError("house_not_found", "House not found")
			}
			return err
		}

		// Re-checked under the row lock. The pre-check in the use
		// case races with concurrent bookings, this one cannot.
		if !house.IsAvailable {
			return httperr.ValidationError(
				"house_not_available",
				"House is not available for booking",
			)
		}

		if err := tx.Model(&house).Update("is_available", false).Error; err != nil {
			return err
		}

		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// Booking (read / update)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
