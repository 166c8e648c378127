package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"hospital-api/internal/apperrors"
	"hospital-api/internal/models"
)

// UserStore is the slice of the user repository the login flow needs.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.AppUser, error)
}

type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// Login verifies the credentials and returns the user's profile without
// the hash. bcrypt's comparison is constant-time.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.UserProfile, error) {
	if username == "" || password == "" {
		return nil, apperrors.Validation("username and password are required")
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.AuthFailure("User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.AuthFailure("Invalid password")
	}

	profile := user.Profile()
	return &profile, nil
}
