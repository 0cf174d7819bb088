package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/kvartirnik/house-booking/internal/httperr"
	"github.com/kvartirnik/house-booking/internal/models"
	ucUser "github.com/kvartirnik/house-booking/internal/usecase/user"
)

const pgUniqueViolation = "23505"

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if field, ok := uniqueViolationField(err); ok {
			return httperr.ConflictError(
				"user_already_exists",
				"User with this "+field+" already exists",
			)
		}
		return err
	}
	return nil
}

func (r *UserGormRepository) FindByPhone(
	ctx context.Context,
	phone string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&u).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Preload("Bookings").
		First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// uniqueViolationField reports which unique column an insert tripped
// over. Constraint names carry the column for our indexes; the raw
// message is the best-effort fallback, "email or phone" when even
// that is ambiguous.
func uniqueViolationField(err error) (string, bool) {

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return "", false
		}
		return fieldFromConstraint(pgErr.ConstraintName + " " + pgErr.Message), true
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
		return fieldFromConstraint(err.Error()), true
	}

	return "", false
}

func fieldFromConstraint(s string) string {
	s = strings.ToLower(s)

	if strings.Contains(s, "email") {
		return "email"
	}
	if strings.Contains(s, "phone") {
		return "phone"
	}
	return "email or phone"
}

// Compile-time check
var _ ucUser.Repository = (*UserGormRepository)(nil)
