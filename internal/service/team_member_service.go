package service

import (
	"context"
	"errors"
	"fmt"

	"taskmanager-be/internal/entities"
	"taskmanager-be/internal/identifier"
	"taskmanager-be/internal/repository"
)

// TeamMemberService defines the interface for team member business logic
type TeamMemberService interface {
	Create(ctx context.Context, member *entities.TeamMember) (string, error)
	List(ctx context.Context) ([]entities.TeamMember, error)
	Update(ctx context.Context, teamMemberID string, member *entities.TeamMember) error
	Delete(ctx context.Context, teamMemberID string) error
}

type teamMemberService struct {
	memberRepo repository.TeamMemberRepository
}

// NewTeamMemberService creates a new team member service
func NewTeamMemberService(memberRepo repository.TeamMemberRepository) TeamMemberService {
	return &teamMemberService{memberRepo: memberRepo}
}

// Create stores a new team member after the advisory duplicate-email check
// (same caveat as signup: not atomic with the insert).
func (s *teamMemberService) Create(ctx context.Context, member *entities.TeamMember) (string, error) {
	existing, err := s.memberRepo.FindByEmail(ctx, member.Email)
	if err != nil && !errors.Is(err, entities.ErrTeamMemberNotFound) {
		return "", fmt.Errorf("failed to check existing team member: %w", err)
	}
	if existing != nil {
		return "", entities.ErrEmailExists
	}

	return s.memberRepo.Insert(ctx, member)
}

// List returns up to maxListResults team members
func (s *teamMemberService) List(ctx context.Context) ([]entities.TeamMember, error) {
	return s.memberRepo.List(ctx, maxListResults)
}

// Update replaces the team member addressed by teamMemberID. The identifier
// is validated before the store is touched.
func (s *teamMemberService) Update(ctx context.Context, teamMemberID string, member *entities.TeamMember) error {
	if err := identifier.Validate(teamMemberID); err != nil {
		return err
	}
	return s.memberRepo.UpdateByMemberID(ctx, teamMemberID, member)
}

// Delete removes the team member addressed by teamMemberID. The identifier
// is validated before the store is touched.
func (s *teamMemberService) Delete(ctx context.Context, teamMemberID string) error {
	if err := identifier.Validate(teamMemberID); err != nil {
		return err
	}
	return s.memberRepo.DeleteByMemberID(ctx, teamMemberID)
}
