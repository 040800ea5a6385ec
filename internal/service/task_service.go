package service

import (
	"context"

	"taskmanager-be/internal/entities"
	"taskmanager-be/internal/identifier"
	"taskmanager-be/internal/repository"
)

// TaskService defines the interface for task business logic
type TaskService interface {
	Create(ctx context.Context, task *entities.Task) (string, error)
	List(ctx context.Context) ([]entities.Task, error)
	Update(ctx context.Context, taskID string, task *entities.Task) error
	Delete(ctx context.Context, taskID string) error
}

type taskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskService{taskRepo: taskRepo}
}

// Create stores a new task and returns its generated id
func (s *taskService) Create(ctx context.Context, task *entities.Task) (string, error) {
	return s.taskRepo.Insert(ctx, task)
}

// List returns up to maxListResults tasks
func (s *taskService) List(ctx context.Context) ([]entities.Task, error) {
	return s.taskRepo.List(ctx, maxListResults)
}

// Update replaces the task addressed by taskID. The identifier is validated
// before the store is touched.
func (s *taskService) Update(ctx context.Context, taskID string, task *entities.Task) error {
	if err := identifier.Validate(taskID); err != nil {
		return err
	}
	return s.taskRepo.UpdateByTaskID(ctx, taskID, task)
}

// Delete removes the task addressed by taskID. The identifier is validated
// before the store is touched.
func (s *taskService) Delete(ctx context.Context, taskID string) error {
	if err := identifier.Validate(taskID); err != nil {
		return err
	}
	return s.taskRepo.DeleteByTaskID(ctx, taskID)
}
