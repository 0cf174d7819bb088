package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/kvartirnik/house-booking/internal/httperr"
	"github.com/kvartirnik/house-booking/internal/models"
	"github.com/kvartirnik/house-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateUserInput struct {
	Email    string
	Name     string
	Phone    string
	Password string
}

// ======================================================
// USE CASE
// ======================================================

type CreateUser struct {
	repo Repository
}

func NewCreateUser(repo Repository) *CreateUser {
	return &CreateUser{repo: repo}
}

func (uc *CreateUser) Execute(
	ctx context.Context,
	in CreateUserInput,
) (*models.User, error) {

	email := strings.ToLower(strings.TrimSpace(in.Email))
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)

	if violations := validate(email, name, phone); len(violations) > 0 {
		return nil, httperr.ValidationError(
			"invalid_user",
			"Validation failed",
			violations...,
		)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Email:        email,
		Name:         name,
		Phone:        phone,
		PasswordHash: string(hashed),
		Roles:        []string{"ROLE_USER"},
	}

	if err := uc.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func validate(email, name, phone string) []string {
	var violations []string

	if email == "" {
		violations = append(violations, "email: This value should not be blank.")
	}
	if len(name) < 2 || len(name) > 100 {
		violations = append(violations, "name: This value should be between 2 and 100 characters long.")
	}
	if phone == "" {
		violations = append(violations, "phone: Phone cannot be empty")
	} else if !validators.IsValidPhone(phone) {
		violations = append(violations, "phone: Invalid phone number format")
	}

	return violations
}
