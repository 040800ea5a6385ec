package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskmanager-be/internal/entities"
)

// fakeMemberRepo is an in-memory TeamMemberRepository.
type fakeMemberRepo struct {
	members    map[string]*entities.TeamMember // keyed by teamMemberId
	storeCalls int
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[string]*entities.TeamMember)}
}

func (f *fakeMemberRepo) FindByEmail(_ context.Context, email string) (*entities.TeamMember, error) {
	for _, member := range f.members {
		if member.Email == email {
			return member, nil
		}
	}
	return nil, entities.ErrTeamMemberNotFound
}

func (f *fakeMemberRepo) Insert(_ context.Context, member *entities.TeamMember) (string, error) {
	f.storeCalls++
	stored := *member
	f.members[member.TeamMemberID] = &stored
	return primitive.NewObjectID().Hex(), nil
}

func (f *fakeMemberRepo) List(_ context.Context, limit int64) ([]entities.TeamMember, error) {
	members := make([]entities.TeamMember, 0, len(f.members))
	for _, member := range f.members {
		if int64(len(members)) == limit {
			break
		}
		members = append(members, *member)
	}
	return members, nil
}

func (f *fakeMemberRepo) UpdateByMemberID(_ context.Context, teamMemberID string, member *entities.TeamMember) error {
	f.storeCalls++
	if _, ok := f.members[teamMemberID]; !ok {
		return entities.ErrTeamMemberNotFound
	}
	stored := *member
	f.members[teamMemberID] = &stored
	return nil
}

func (f *fakeMemberRepo) DeleteByMemberID(_ context.Context, teamMemberID string) error {
	f.storeCalls++
	if _, ok := f.members[teamMemberID]; !ok {
		return entities.ErrTeamMemberNotFound
	}
	delete(f.members, teamMemberID)
	return nil
}

func validMember(teamMemberID, email string) *entities.TeamMember {
	return &entities.TeamMember{
		Name:         "Ravi Kumar",
		Email:        email,
		Phone:        "9123456780",
		Role:         "qa",
		TeamMemberID: teamMemberID,
		Access:       "read-write",
	}
}

func TestTeamMemberCreateDuplicateEmail(t *testing.T) {
	repo := newFakeMemberRepo()
	svc := NewTeamMemberService(repo)

	_, err := svc.Create(context.Background(), validMember(uuid.NewString(), "ravi@example.com"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validMember(uuid.NewString(), "ravi@example.com"))
	require.ErrorIs(t, err, entities.ErrEmailExists)
	require.Len(t, repo.members, 1)
}

func TestTeamMemberUpdateRejectsMalformedID(t *testing.T) {
	repo := newFakeMemberRepo()
	svc := NewTeamMemberService(repo)

	err := svc.Update(context.Background(), "bogus", validMember(uuid.NewString(), "ravi@example.com"))
	require.ErrorIs(t, err, entities.ErrInvalidID)
	require.Zero(t, repo.storeCalls)
}

func TestTeamMemberDeleteUnknownID(t *testing.T) {
	svc := NewTeamMemberService(newFakeMemberRepo())

	err := svc.Delete(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, entities.ErrTeamMemberNotFound)
}

func TestTeamMemberDeleteTwice(t *testing.T) {
	repo := newFakeMemberRepo()
	svc := NewTeamMemberService(repo)

	memberID := uuid.NewString()
	_, err := svc.Create(context.Background(), validMember(memberID, "ravi@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), memberID))
	require.ErrorIs(t, svc.Delete(context.Background(), memberID), entities.ErrTeamMemberNotFound)
}
