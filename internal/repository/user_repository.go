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
	"taskmanager-be/internal/models"
)

// UserRepository defines the interface for user collection operations
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Insert(ctx context.Context, user *entities.User) (string, error)
	List(ctx context.Context, limit int64) ([]models.UserSummary, error)
}

type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{collection: db.Collection(database.CollectionUsers)}
}

// FindByEmail finds a user by email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, entities.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// Insert stores a new user document and returns its generated id
func (r *userRepository) Insert(ctx context.Context, user *entities.User) (string, error) {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return "", fmt.Errorf("failed to insert user: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

// List returns up to limit user summaries. The projection keeps only the
// masked fields; password and _id never leave the store.
func (r *userRepository) List(ctx context.Context, limit int64) ([]models.UserSummary, error) {
	opts := options.Find().
		SetLimit(limit).
		SetProjection(bson.M{"name": 1, "email": 1, "role": 1, "age": 1, "phone": 1, "_id": 0})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]models.UserSummary, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, nil
}
