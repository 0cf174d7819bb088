package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kvartirnik/house-booking/internal/httperr"
	"github.com/kvartirnik/house-booking/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateUser(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestCreateUser_Success(t *testing.T) {
	repo := &MockRepository{}
	uc := NewCreateUser(repo)

	ctx := context.Background()
	repo.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).Return(nil).Once()

	u, err := uc.Execute(ctx, CreateUserInput{
		Email:    "  Ann@Example.COM ",
		Name:     " Ann ",
		Phone:    " 79000000001 ",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", u.Email)
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, "79000000001", u.Phone)
	assert.Equal(t, []string{"ROLE_USER"}, u.Roles)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
	repo.AssertExpectations(t)
}

func TestCreateUser_InvalidPhone(t *testing.T) {
	repo := &MockRepository{}
	uc := NewCreateUser(repo)

	cases := []struct {
		name  string
		phone string
	}{
		{"empty", "   "},
		{"too short", "7900000000"},
		{"too long", "790000000012"},
		{"wrong leading digit", "69000000001"},
		{"non numeric", "7900000000a"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := uc.Execute(context.Background(), CreateUserInput{
				Email:    "a@b.com",
				Name:     "Ann",
				Phone:    tc.phone,
				Password: "secret123",
			})

			assert.Nil(t, u)
			require.Error(t, err)
			assert.True(t, httperr.IsKind(err, httperr.KindValidation))
		})
	}

	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestCreateUser_NameTooShort(t *testing.T) {
	repo := &MockRepository{}
	uc := NewCreateUser(repo)

	u, err := uc.Execute(context.Background(), CreateUserInput{
		Email:    "a@b.com",
		Name:     "A",
		Phone:    "79000000001",
		Password: "secret123",
	})

	assert.Nil(t, u)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}

func TestCreateUser_ConflictPropagates(t *testing.T) {
	repo := &MockRepository{}
	uc := NewCreateUser(repo)

	ctx := context.Background()
	conflict := httperr.ConflictError("user_already_exists", "User with this email already exists")
	repo.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).Return(conflict).Once()

	u, err := uc.Execute(ctx, CreateUserInput{
		Email:    "a@b.com",
		Name:     "Ann",
		Phone:    "79000000001",
		Password: "secret123",
	})

	assert.Nil(t, u)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	assert.EqualError(t, err, "User with this email already exists")
}
