package service

import (
	"context"

	"taskvault/internal/core/domain"
	"taskvault/internal/core/ports"
)

// TaskService hands the caller identity it receives straight into every
// repository call. The repository applies the scope inside the query, so no
// operation can touch a task the caller does not own.
type TaskService struct {
	taskRepository ports.TaskRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID string, draft domain.CreateTaskInput) (domain.Task, error) {
	return s.taskRepository.Insert(ctx, ownerID, draft)
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	return s.taskRepository.ListByOwner(ctx, ownerID)
}

func (s *TaskService) GetTask(ctx context.Context, taskID, ownerID string) (domain.Task, error) {
	return s.taskRepository.FindByOwner(ctx, taskID, ownerID)
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID, ownerID string, patch domain.UpdateTaskInput) (domain.Task, error) {
	return s.taskRepository.UpdateByOwner(ctx, taskID, ownerID, patch)
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID, ownerID string) (domain.Task, error) {
	return s.taskRepository.DeleteByOwner(ctx, taskID, ownerID)
}
