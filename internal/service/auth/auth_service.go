package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthUseCase interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

// AuthService does plain credential comparison against the users table.
// Callers get a resolved user id back; the booking engine trusts it and does
// not re-authenticate.
type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return domain.InvalidInput("name, email and password are required")
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil && domain.KindOf(err) != domain.KindNotFound {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	// The existence check above is advisory: a concurrent registration can
	// still win the insert, and the unique index reports it here.
	if err := s.users.Create(ctx, &domain.User{Name: name, Email: email, Password: password}); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, domain.InvalidInput("email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

var _ AuthUseCase = (*AuthService)(nil)
