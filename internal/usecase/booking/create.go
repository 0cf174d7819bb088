package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kvartirnik/house-booking/internal/audit"
	domain "github.com/kvartirnik/house-booking/internal/domain/booking"
	"github.com/kvartirnik/house-booking/internal/httperr"
	"github.com/kvartirnik/house-booking/internal/models"
)

// CatalogCache is the slice of the house cache the workflow needs:
// a booking takes a house off the market, so the cached listing is
// stale the moment the transaction commits.
type CatalogCache interface {
	InvalidateHouses(ctx context.Context) error
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache CatalogCache
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache CatalogCache,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	user *models.User,
	houseID uint,
	comment string,
) (*models.Booking, error) {

	house, err := uc.repo.GetHouseByID(ctx, houseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFoundError("house_not_found", "House not found")
		}
		return nil, err
	}

	// Fast-path check; BookHouse repeats it under a row lock.
	if !house.IsAvailable {
		return nil, httperr.ValidationError(
			"house_not_available",
			"House is not available for booking",
		)
	}

	trimmed, err := domain.NormalizeComment(comment)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		UserID:  user.ID,
		HouseID: house.ID,
		Comment: trimmed,
		Status:  string(domain.InitialStatus()),
	}

	// Atomic flip-and-insert. A failure inside rolls everything
	// back and the original error comes out unchanged.
	if err := uc.repo.BookHouse(ctx, b); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		_ = uc.cache.InvalidateHouses(ctx)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &b.UserID,
			Action:   "booking_created",
			Entity:   "booking",
			EntityID: &b.ID,
			Metadata: map[string]any{"house_id": house.ID},
		})
	}

	return b, nil
}
