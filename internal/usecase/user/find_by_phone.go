package user

import (
	"context"

	"github.com/kvartirnik/house-booking/internal/models"
)

type FindUserByPhone struct {
	repo Repository
}

func NewFindUserByPhone(repo Repository) *FindUserByPhone {
	return &FindUserByPhone{repo: repo}
}

// Execute resolves a user by exact phone match, (nil, nil) when absent.
func (uc *FindUserByPhone) Execute(
	ctx context.Context,
	phone string,
) (*models.User, error) {
	return uc.repo.FindByPhone(ctx, phone)
}
