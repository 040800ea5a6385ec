package service

import (
	"context"

	"taskmanager-be/internal/models"
	"taskmanager-be/internal/repository"
)

// maxListResults caps every list operation; no endpoint returns more
// documents than this in one response.
const maxListResults = 100

// UserService defines the interface for user listing business logic
type UserService interface {
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// ListUsers returns up to maxListResults masked user summaries
func (s *userService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	return s.userRepo.List(ctx, maxListResults)
}
