package domain

import (
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Valid reports whether the status is one of the three recognized values.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

type Task struct {
	ID          string
	OwnerID     string
	Title       string
	Description *string
	Status      TaskStatus
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateTaskInput is the client-editable part of a new task. The owner and the
// identifier are never part of it; both are assigned server-side.
type CreateTaskInput struct {
	Title       string
	Description *string
	Status      TaskStatus
	DueDate     *time.Time
}

// Validate is invoked by the repository right before persistence.
func (in CreateTaskInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrInvalidTask
	}
	if in.Status != "" && !in.Status.Valid() {
		return ErrInvalidTask
	}
	return nil
}

// UpdateTaskInput carries a partial edit. The Set flags distinguish a field
// explicitly set to null from a field absent from the payload.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
	DueDate        *time.Time
	DueDateSet     bool
}

func (in UpdateTaskInput) Validate() error {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return ErrInvalidTask
	}
	if in.Status != nil && !in.Status.Valid() {
		return ErrInvalidTask
	}
	return nil
}

// Empty reports whether the patch would change nothing.
func (in UpdateTaskInput) Empty() bool {
	return in.Title == nil && !in.DescriptionSet && in.Status == nil && !in.DueDateSet
}
