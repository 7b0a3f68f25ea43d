package dto

import (
	"time"

	"github.com/mfalves/todo-list-api/internal/models"
	"github.com/mfalves/todo-list-api/internal/utils"
)

// CreateTaskRequest is the payload for creating a task. The owner is never
// taken from the body; it always comes from the resolved identity.
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Finished    bool   `json:"finished"`
}

// UpdateTaskRequest carries partial update fields. Nil means the field was
// omitted (or sent as null) and stays untouched.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Finished    *bool   `json:"finished"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Finished           bool      `json:"finished"`
	OwnerID            string    `json:"owner_id"`
	AttachmentFilename string    `json:"attachment_filename,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks      []TaskDTO                `json:"tasks"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// UploadResponse echoes the associated task and the generated filename
type UploadResponse struct {
	TaskID   *string `json:"task_id"`
	Filename string  `json:"filename"`
}

// GenerateTasksRequest is the payload for AI task generation
type GenerateTasksRequest struct {
	Text string `json:"text" binding:"required"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:                 task.ID,
		Title:              task.Title,
		Description:        task.Description,
		Finished:           task.Finished,
		OwnerID:            task.OwnerID,
		AttachmentFilename: task.AttachmentFilename,
		CreatedAt:          task.CreatedAt,
		UpdatedAt:          task.UpdatedAt,
	}
}

// ToTaskListResponse converts a page of tasks to TaskListResponse
func ToTaskListResponse(tasks []models.Task, params utils.PaginationParams, total int64) TaskListResponse {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}

	return TaskListResponse{
		Tasks:      items,
		Pagination: utils.NewPaginationResponse(params, total),
	}
}
