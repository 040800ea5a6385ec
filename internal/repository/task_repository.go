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

// TaskRepository defines the interface for task collection operations
type TaskRepository interface {
	Insert(ctx context.Context, task *entities.Task) (string, error)
	List(ctx context.Context, limit int64) ([]entities.Task, error)
	UpdateByTaskID(ctx context.Context, taskID string, task *entities.Task) error
	DeleteByTaskID(ctx context.Context, taskID string) error
}

type taskRepository struct {
	collection *mongo.Collection
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *mongo.Database) TaskRepository {
	return &taskRepository{collection: db.Collection(database.CollectionTasks)}
}

// Insert stores a new task document and returns its generated id
func (r *taskRepository) Insert(ctx context.Context, task *entities.Task) (string, error) {
	result, err := r.collection.InsertOne(ctx, task)
	if err != nil {
		return "", fmt.Errorf("failed to insert task: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

// List returns up to limit tasks
func (r *taskRepository) List(ctx context.Context, limit int64) ([]entities.Task, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]entities.Task, 0)
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}

	return tasks, nil
}

// UpdateByTaskID replaces the fields of the task addressed by taskID.
// Returns entities.ErrTaskNotFound when no document matches.
func (r *taskRepository) UpdateByTaskID(ctx context.Context, taskID string, task *entities.Task) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"taskId": taskID}, bson.M{"$set": task})
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if result.MatchedCount == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}

// DeleteByTaskID removes the task addressed by taskID.
// Returns entities.ErrTaskNotFound when nothing was deleted.
func (r *taskRepository) DeleteByTaskID(ctx context.Context, taskID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"taskId": taskID})
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.DeletedCount == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}
