package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskmanager-be/internal/database"
	"taskmanager-be/internal/entities"
)

// TeamMemberRepository defines the interface for team member collection operations
type TeamMemberRepository interface {
	FindByEmail(ctx context.Context, email string) (*entities.TeamMember, error)
	Insert(ctx context.Context, member *entities.TeamMember) (string, error)
	List(ctx context.Context, limit int64) ([]entities.TeamMember, error)
	UpdateByMemberID(ctx context.Context, teamMemberID string, member *entities.TeamMember) error
	DeleteByMemberID(ctx context.Context, teamMemberID string) error
}

type teamMemberRepository struct {
	collection *mongo.Collection
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *mongo.Database) TeamMemberRepository {
	return &teamMemberRepository{collection: db.Collection(database.CollectionTeamMembers)}
}

// FindByEmail finds a team member by email
func (r *teamMemberRepository) FindByEmail(ctx context.Context, email string) (*entities.TeamMember, error) {
	var member entities.TeamMember
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&member)
	if err == mongo.ErrNoDocuments {
		return nil, entities.ErrTeamMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find team member: %w", err)
	}

	return &member, nil
}

// Insert stores a new team member document and returns its generated id
func (r *teamMemberRepository) Insert(ctx context.Context, member *entities.TeamMember) (string, error) {
	result, err := r.collection.InsertOne(ctx, member)
	if err != nil {
		return "", fmt.Errorf("failed to insert team member: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

// List returns up to limit team members
func (r *teamMemberRepository) List(ctx context.Context, limit int64) ([]entities.TeamMember, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	members := make([]entities.TeamMember, 0)
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("failed to decode team members: %w", err)
	}

	return members, nil
}

// UpdateByMemberID replaces the fields of the team member addressed by teamMemberID.
// Returns entities.ErrTeamMemberNotFound when no document matches.
func (r *teamMemberRepository) UpdateByMemberID(ctx context.Context, teamMemberID string, member *entities.TeamMember) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"teamMemberId": teamMemberID}, bson.M{"$set": member})
	if err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
	}
	if result.MatchedCount == 0 {
		return entities.ErrTeamMemberNotFound
	}

	return nil
}

// DeleteByMemberID removes the team member addressed by teamMemberID.
// Returns entities.ErrTeamMemberNotFound when nothing was deleted.
func (r *teamMemberRepository) DeleteByMemberID(ctx context.Context, teamMemberID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"teamMemberId": teamMemberID})
	if err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	if result.DeletedCount == 0 {
		return entities.ErrTeamMemberNotFound
	}

	return nil
}
