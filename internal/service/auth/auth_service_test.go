package auth

import (
	"context"
	"testing"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func TestAuthService_Register_Success(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewAuthService(mockUsers)
	ctx := context.Background()

	mockUsers.On("GetByEmail", ctx, "anna@example.com").Return(nil, domain.NotFound("user not found"))
	mockUsers.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	err := service.Register(ctx, "Anna", "anna@example.com", "secret")

	assert.NoError(t, err)
	mockUsers.AssertExpectations(t)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewAuthService(mockUsers)
	ctx := context.Background()

	mockUsers.On("GetByEmail", ctx, "anna@example.com").Return(&domain.User{ID: 1, Email: "anna@example.com"}, nil)

	err := service.Register(ctx, "Anna", "anna@example.com", "secret")

	assert.ErrorIs(t, err, ErrEmailTaken)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_LostInsertRace(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewAuthService(mockUsers)
	ctx := context.Background()

	// The existence check passes, but a concurrent registration commits the
	// same email first and the insert hits the unique index.
	mockUsers.On("GetByEmail", ctx, "anna@example.com").Return(nil, domain.NotFound("user not found"))
	mockUsers.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(repository.ErrDuplicateEmail)

	err := service.Register(ctx, "Anna", "anna@example.com", "secret")

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewAuthService(mockUsers)

	err := service.Register(context.Background(), "", "anna@example.com", "secret")

	assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))
	mockUsers.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewAuthService(mockUsers)
	ctx := context.Background()

	mockUsers.On("GetByEmail", ctx, "anna@example.com").Return(&domain.User{
		ID:       1,
		Name:     "Anna",
		Email:    "anna@example.com",
		Password: "secret",
	}, nil)

	user, err := service.Login(ctx, "anna@example.com", "secret")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Anna", user.Name)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewAuthService(mockUsers)
	ctx := context.Background()

	mockUsers.On("GetByEmail", ctx, "anna@example.com").Return(&domain.User{Password: "secret"}, nil)

	user, err := service.Login(ctx, "anna@example.com", "wrong")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewAuthService(mockUsers)
	ctx := context.Background()

	mockUsers.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.NotFound("user not found"))

	user, err := service.Login(ctx, "nobody@example.com", "secret")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
