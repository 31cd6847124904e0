package ports

import (
	"context"

	"taskvault/internal/core/domain"
)

// TaskRepository persists tasks. Every lookup or mutation other than Insert
// takes the owner identity and applies it inside the same query that locates
// the record, so a task belonging to someone else surfaces as
// domain.ErrTaskNotFound exactly like a task that does not exist.
type TaskRepository interface {
	Insert(ctx context.Context, ownerID string, draft domain.CreateTaskInput) (domain.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)
	FindByOwner(ctx context.Context, taskID, ownerID string) (domain.Task, error)
	UpdateByOwner(ctx context.Context, taskID, ownerID string, patch domain.UpdateTaskInput) (domain.Task, error)
	DeleteByOwner(ctx context.Context, taskID, ownerID string) (domain.Task, error)
}

// TaskService is the ownership-scoped CRUD surface consumed by the HTTP layer.
// The caller identity is always an explicit argument, never ambient state.
type TaskService interface {
	CreateTask(ctx context.Context, ownerID string, draft domain.CreateTaskInput) (domain.Task, error)
	ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error)
	GetTask(ctx context.Context, taskID, ownerID string) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID, ownerID string, patch domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID, ownerID string) (domain.Task, error)
}
