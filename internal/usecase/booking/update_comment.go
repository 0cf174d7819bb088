package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kvartirnik/house-booking/internal/audit"
	domain "github.com/kvartirnik/house-booking/internal/domain/booking"
)

type UpdateBookingComment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingComment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingComment {
	return &UpdateBookingComment{
		repo:  repo,
		audit: audit,
	}
}

// Execute returns (false, nil) when the booking does not exist.
// A blank comment is a validation error, never a "not found" —
// callers branch on the two outcomes separately.
func (uc *UpdateBookingComment) Execute(
	ctx context.Context,
	bookingID uint,
	comment string,
) (bool, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	trimmed, err := domain.NormalizeComment(comment)
	if err != nil {
		return false, err
	}

	b.Comment = trimmed

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return false, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &b.UserID,
			Action:   "booking_comment_updated",
			Entity:   "booking",
			EntityID: &b.ID,
		})
	}

	return true, nil
}
