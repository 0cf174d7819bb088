package booking

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kvartirnik/house-booking/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetHouseByID(ctx context.Context, id uint) (*models.House, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.House), args.Error(1)
}

func (m *MockRepository) ListAvailableHouses(ctx context.Context) ([]models.House, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.House), args.Error(1)
}

func (m *MockRepository) BookHouse(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) GetBookingByID(ctx context.Context, id uint) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockRepository) UpdateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) ListBookingsForUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

type MockCatalogCache struct {
	mock.Mock
}

func (m *MockCatalogCache) InvalidateHouses(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
