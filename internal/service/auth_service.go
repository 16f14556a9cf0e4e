package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"news-notes/internal/domain"
	"news-notes/internal/metrics"
	"news-notes/internal/repository"
	"news-notes/internal/validator"
)

// ErrInvalidCredentials is returned on a failed login. The message does
// not say whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService implements the account use-cases.
type AuthService struct {
	users     repository.UserRepository
	validator *validator.Validator
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, v *validator.Validator) *AuthService {
	return &AuthService{users: users, validator: v}
}

// Signup validates the form and creates the account.
func (s *AuthService) Signup(ctx context.Context, form *domain.SignupForm) (*domain.User, domain.FieldErrors, error) {
	if errs := s.validator.ValidateSignup(form); errs != nil {
		return nil, errs, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     form.Username,
		Name:         form.Name,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, domain.FieldErrors{"username": "This username is already taken."}, nil
		}
		return nil, nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil, nil
}

// Login verifies the credentials and returns the user.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", username, err)
	}
	if user == nil {
		metrics.ObserveLogin("failure")
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		metrics.ObserveLogin("failure")
		return nil, ErrInvalidCredentials
	}

	metrics.ObserveLogin("success")
	return user, nil
}
