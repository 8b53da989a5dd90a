package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/service/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, name, email, password string) error {
	args := m.Called(ctx, name, email, password)
	return args.Error(0)
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func authRouter(service auth.AuthUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAuthHandler(service).Register(router.Group("/api/auth"))
	return router
}

func TestAuthHandler_register(t *testing.T) {
	mockService := &MockAuthUseCase{}
	router := authRouter(mockService)

	mockService.On("Register", mock.Anything, "Anna", "anna@example.com", "secret").Return(nil)

	body := []byte(`{"name":"Anna","email":"anna@example.com","password":"secret"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_register_EmailTaken(t *testing.T) {
	mockService := &MockAuthUseCase{}
	router := authRouter(mockService)

	mockService.On("Register", mock.Anything, "Anna", "anna@example.com", "secret").Return(auth.ErrEmailTaken)

	body := []byte(`{"name":"Anna","email":"anna@example.com","password":"secret"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_login(t *testing.T) {
	mockService := &MockAuthUseCase{}
	router := authRouter(mockService)

	mockService.On("Login", mock.Anything, "anna@example.com", "secret").Return(&domain.User{
		ID:    1,
		Name:  "Anna",
		Email: "anna@example.com",
	}, nil)

	body := []byte(`{"email":"anna@example.com","password":"secret"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":1`)
}

func TestAuthHandler_login_BadCredentials(t *testing.T) {
	mockService := &MockAuthUseCase{}
	router := authRouter(mockService)

	mockService.On("Login", mock.Anything, "anna@example.com", "wrong").Return(nil, auth.ErrInvalidCredentials)

	body := []byte(`{"email":"anna@example.com","password":"wrong"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
