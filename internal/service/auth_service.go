package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"taskmanager-be/internal/entities"
	"taskmanager-be/internal/models"
	"taskmanager-be/internal/repository"
)

// AuthService defines the interface for signup and login business logic
type AuthService interface {
	Signup(ctx context.Context, user *entities.User) (*models.UserDetails, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.UserDetails, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Signup creates a new user account. The duplicate-email check is advisory:
// two concurrent signups can both pass it, and a unique index on email at the
// store level is the actual backstop.
func (s *authService) Signup(ctx context.Context, user *entities.User) (*models.UserDetails, error) {
	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, entities.ErrEmailExists
	}

	hash, err := hashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hash

	if _, err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return maskUser(user), nil
}

// Login authenticates a user by email and password
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.UserDetails, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !verifyPassword(req.Password, user.Password) {
		return nil, entities.ErrInvalidPassword
	}

	return maskUser(user), nil
}

// hashPassword applies one-way, salted adaptive hashing to a plaintext password
func hashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// verifyPassword compares a plaintext password against a stored hash
func verifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// maskUser strips the password hash from a user record
func maskUser(user *entities.User) *models.UserDetails {
	return &models.UserDetails{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Phone: user.Phone,
		Age:   user.Age,
	}
}
