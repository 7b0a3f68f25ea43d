package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mfalves/todo-list-api/internal/constants"
	"github.com/mfalves/todo-list-api/internal/models"
	"github.com/mfalves/todo-list-api/internal/repository"
	"github.com/mfalves/todo-list-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound           = errors.New("task not found")
	ErrInvalidTaskID          = errors.New("invalid task id")
	ErrTitleRequired          = errors.New("title is required")
	ErrTitleEmpty             = errors.New("title cannot be empty")
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
	ErrAINoTasksGenerated     = errors.New("AI did not generate any tasks")
)

// TaskGenerator extracts task suggestions from free text
type TaskGenerator interface {
	GenerateTasksFromText(ctx context.Context, text string) ([]GeneratedTask, error)
}

// TaskService owns the task business rules. Every operation takes the
// resolved owner ID and never trusts a client-supplied one.
type TaskService struct {
	taskRepo  repository.TaskRepository
	aiService TaskGenerator
}

// NewTaskService creates a new TaskService. aiService may be nil; generation
// then reports ErrAIServiceNotConfigured.
func NewTaskService(taskRepo repository.TaskRepository, aiService TaskGenerator) *TaskService {
	return &TaskService{
		taskRepo:  taskRepo,
		aiService: aiService,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	OwnerID     string
	Title       string
	Description string
	Finished    bool
}

// ListTasksInput represents filters for listing an owner's tasks
type ListTasksInput struct {
	OwnerID  string
	Finished *bool
	Page     int
	PageSize int
}

// UpdateTaskInput represents partial update fields; nil fields stay untouched
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Finished    *bool
}

// CreateTask validates the input and persists a task owned by the caller
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Finished:    input.Finished,
		OwnerID:     input.OwnerID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListTasks returns a page of the owner's tasks and the total matching count.
// A page past the end yields an empty page, not an error.
func (s *TaskService) ListTasks(input ListTasksInput) ([]models.Task, int64, error) {
	filter := repository.TaskFilter{
		OwnerID:    input.OwnerID,
		Finished:   input.Finished,
		Pagination: utils.ClampPagination(input.Page, input.PageSize),
	}

	tasks, total, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}

// GetTask returns the owner's task by ID. A task owned by someone else is
// reported as not found so that existence never leaks.
func (s *TaskService) GetTask(ownerID, taskID string) (*models.Task, error) {
	if err := validateTaskID(taskID); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindByID(ownerID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// UpdateTask applies the provided fields to the owner's task. Omitted fields
// are untouched; an empty input leaves everything but updated_at unchanged.
func (s *TaskService) UpdateTask(ownerID, taskID string, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.GetTask(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleEmpty
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Finished != nil {
		task.Finished = *input.Finished
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask removes the owner's task. Deleting an absent or foreign task
// reports not found.
func (s *TaskService) DeleteTask(ownerID, taskID string) error {
	if err := validateTaskID(taskID); err != nil {
		return err
	}

	deleted, err := s.taskRepo.Delete(ownerID, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if !deleted {
		return ErrTaskNotFound
	}

	return nil
}

// SetAttachment records the generated attachment filename on the owner's task
func (s *TaskService) SetAttachment(ownerID, taskID, filename string) (*models.Task, error) {
	task, err := s.GetTask(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	task.AttachmentFilename = filename

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to record attachment: %w", err)
	}

	return task, nil
}

// GenerateTasks extracts tasks from free text via the AI service and creates
// them as tasks owned by the caller
func (s *TaskService) GenerateTasks(ctx context.Context, ownerID, text string) ([]models.Task, error) {
	if s.aiService == nil {
		return nil, ErrAIServiceNotConfigured
	}

	suggestions, err := s.aiService.GenerateTasksFromText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tasks: %w", err)
	}

	if len(suggestions) == 0 {
		return nil, ErrAINoTasksGenerated
	}
	if len(suggestions) > constants.MaxAIGeneratedTasks {
		return nil, fmt.Errorf("AI generated too many tasks (max %d)", constants.MaxAIGeneratedTasks)
	}

	created := make([]models.Task, 0, len(suggestions))
	for _, suggestion := range suggestions {
		if strings.TrimSpace(suggestion.Title) == "" {
			continue
		}

		task := &models.Task{
			Title:       suggestion.Title,
			Description: suggestion.Description,
			OwnerID:     ownerID,
		}
		if err := s.taskRepo.Create(task); err != nil {
			return nil, fmt.Errorf("failed to create generated task: %w", err)
		}
		created = append(created, *task)
	}

	if len(created) == 0 {
		return nil, ErrAINoTasksGenerated
	}

	return created, nil
}

func validateTaskID(taskID string) error {
	if _, err := uuid.Parse(taskID); err != nil {
		return ErrInvalidTaskID
	}
	return nil
}
