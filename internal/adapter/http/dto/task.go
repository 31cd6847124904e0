package dto

// TaskItem is the wire representation of a task. The owner and the id are
// always server-assigned; no request struct binds them.
type TaskItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	DueDate     *string `json:"dueDate,omitempty"`
	OwnerID     string  `json:"ownerId"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
	DueDate     *string `json:"dueDate" binding:"omitempty"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
	DueDate     *string `json:"dueDate" binding:"omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
