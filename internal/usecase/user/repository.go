package user

import (
	"context"

	"github.com/kvartirnik/house-booking/internal/models"
)

type Repository interface {
	// CreateUser persists the user. A uniqueness collision on email
	// or phone comes back as a Conflict business error naming the
	// violated field.
	CreateUser(ctx context.Context, u *models.User) error

	// FindByPhone returns (nil, nil) when no user matches.
	FindByPhone(ctx context.Context, phone string) (*models.User, error)

	GetByID(ctx context.Context, id uint) (*models.User, error)
}
