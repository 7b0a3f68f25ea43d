package repository

import (
	"github.com/mfalves/todo-list-api/internal/models"
	"github.com/mfalves/todo-list-api/internal/utils"
)

// TaskRepository defines the interface for task data access. Every query is
// owner-scoped; there is no way to reach another owner's rows through it.
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID belonging to the given owner
	FindByID(ownerID, id string) (*models.Task, error)

	// List retrieves an owner's tasks with filtering and pagination,
	// returning the page and the total matching count
	List(filter TaskFilter) ([]models.Task, int64, error)

	// Update persists changes to a task
	Update(task *models.Task) error

	// Delete removes an owner's task by ID; reports whether a row was deleted
	Delete(ownerID, id string) (bool, error)
}

// TaskFilter holds filtering options for listing tasks. Pagination is
// expected to be clamped already; the repository applies it as-is.
type TaskFilter struct {
	OwnerID    string
	Finished   *bool
	Pagination utils.PaginationParams
}
