package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mfalves/todo-list-api/internal/constants"
	"github.com/mfalves/todo-list-api/internal/models"
	"github.com/mfalves/todo-list-api/internal/repository"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubTaskGenerator returns canned suggestions without calling OpenAI
type stubTaskGenerator struct {
	tasks []GeneratedTask
	err   error
}

func (g *stubTaskGenerator) GenerateTasksFromText(ctx context.Context, text string) ([]GeneratedTask, error) {
	return g.tasks, g.err
}

// TaskServiceTestSuite defines the test suite for TaskService
type TaskServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *TaskService
	ownerA  string
	ownerB  string
}

// SetupTest runs before each test
func (suite *TaskServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.Task{})
	suite.Require().NoError(err)

	suite.service = NewTaskService(repository.NewTaskRepository(suite.db), nil)
	suite.ownerA = uuid.New().String()
	suite.ownerB = uuid.New().String()
}

// TearDownTest runs after each test
func (suite *TaskServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskServiceTestSuite) createTask(owner, title string, finished bool) *models.Task {
	task, err := suite.service.CreateTask(CreateTaskInput{
		OwnerID:     owner,
		Title:       title,
		Description: "Test Description",
		Finished:    finished,
	})
	suite.Require().NoError(err)
	return task
}

func (suite *TaskServiceTestSuite) TestCreateTask_RoundTrip() {
	created := suite.createTask(suite.ownerA, "Buy groceries", false)

	suite.NotEmpty(created.ID)
	_, err := uuid.Parse(created.ID)
	suite.NoError(err)
	suite.Equal(suite.ownerA, created.OwnerID)

	found, err := suite.service.GetTask(suite.ownerA, created.ID)
	suite.NoError(err)
	suite.Equal(created.Title, found.Title)
	suite.Equal(created.Description, found.Description)
	suite.Equal(created.Finished, found.Finished)
	suite.Equal(created.OwnerID, found.OwnerID)
}

func (suite *TaskServiceTestSuite) TestCreateTask_EmptyTitle() {
	_, err := suite.service.CreateTask(CreateTaskInput{
		OwnerID: suite.ownerA,
		Title:   "   ",
	})
	suite.ErrorIs(err, ErrTitleRequired)
}

func (suite *TaskServiceTestSuite) TestGetTask_InvalidID() {
	_, err := suite.service.GetTask(suite.ownerA, "not-a-uuid")
	suite.ErrorIs(err, ErrInvalidTaskID)
}

func (suite *TaskServiceTestSuite) TestGetTask_OtherOwnerIsNotFound() {
	task := suite.createTask(suite.ownerA, "Private task", false)

	_, err := suite.service.GetTask(suite.ownerB, task.ID)
	suite.ErrorIs(err, ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_Partial() {
	task := suite.createTask(suite.ownerA, "Old title", false)

	newTitle := "New title"
	updated, err := suite.service.UpdateTask(suite.ownerA, task.ID, UpdateTaskInput{
		Title: &newTitle,
	})
	suite.NoError(err)
	suite.Equal("New title", updated.Title)
	suite.Equal(task.Description, updated.Description)
	suite.Equal(task.Finished, updated.Finished)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_EmptyInputOnlyTouchesUpdatedAt() {
	task := suite.createTask(suite.ownerA, "Stable task", true)

	updated, err := suite.service.UpdateTask(suite.ownerA, task.ID, UpdateTaskInput{})
	suite.NoError(err)
	suite.Equal(task.Title, updated.Title)
	suite.Equal(task.Description, updated.Description)
	suite.Equal(task.Finished, updated.Finished)
	suite.Equal(task.OwnerID, updated.OwnerID)
	suite.WithinDuration(task.CreatedAt, updated.CreatedAt, time.Second)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_EmptyTitleRejected() {
	task := suite.createTask(suite.ownerA, "Titled", false)

	empty := ""
	_, err := suite.service.UpdateTask(suite.ownerA, task.ID, UpdateTaskInput{Title: &empty})
	suite.ErrorIs(err, ErrTitleEmpty)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_OtherOwnerIsNotFound() {
	task := suite.createTask(suite.ownerA, "Private task", false)

	finished := true
	_, err := suite.service.UpdateTask(suite.ownerB, task.ID, UpdateTaskInput{Finished: &finished})
	suite.ErrorIs(err, ErrTaskNotFound)

	// Verify nothing changed
	unchanged, err := suite.service.GetTask(suite.ownerA, task.ID)
	suite.NoError(err)
	suite.False(unchanged.Finished)
}

func (suite *TaskServiceTestSuite) TestDeleteTask_Twice() {
	task := suite.createTask(suite.ownerA, "Short lived", false)

	suite.NoError(suite.service.DeleteTask(suite.ownerA, task.ID))
	suite.ErrorIs(suite.service.DeleteTask(suite.ownerA, task.ID), ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestDeleteTask_OtherOwnerIsNotFound() {
	task := suite.createTask(suite.ownerA, "Private task", false)

	suite.ErrorIs(suite.service.DeleteTask(suite.ownerB, task.ID), ErrTaskNotFound)

	// Still there for the owner
	_, err := suite.service.GetTask(suite.ownerA, task.ID)
	suite.NoError(err)
}

func (suite *TaskServiceTestSuite) TestListTasks_FinishedFilterScopedToOwner() {
	suite.createTask(suite.ownerA, "Done A", true)
	suite.createTask(suite.ownerA, "Open A", false)
	suite.createTask(suite.ownerB, "Done B", true)

	finished := true
	tasks, total, err := suite.service.ListTasks(ListTasksInput{
		OwnerID:  suite.ownerA,
		Finished: &finished,
		Page:     1,
		PageSize: 50,
	})
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(tasks, 1)
	suite.Equal("Done A", tasks[0].Title)
	suite.True(tasks[0].Finished)
}

func (suite *TaskServiceTestSuite) TestListTasks_Pagination() {
	for i := 0; i < 120; i++ {
		suite.createTask(suite.ownerA, fmt.Sprintf("Task %03d", i), false)
	}
	suite.createTask(suite.ownerB, "Someone else's task", false)

	page1, total, err := suite.service.ListTasks(ListTasksInput{OwnerID: suite.ownerA, Page: 1, PageSize: 50})
	suite.NoError(err)
	suite.Equal(int64(120), total)
	suite.Len(page1, 50)

	page3, total, err := suite.service.ListTasks(ListTasksInput{OwnerID: suite.ownerA, Page: 3, PageSize: 50})
	suite.NoError(err)
	suite.Equal(int64(120), total)
	suite.Len(page3, 20)

	// Past the end: empty page, not an error
	page4, total, err := suite.service.ListTasks(ListTasksInput{OwnerID: suite.ownerA, Page: 4, PageSize: 50})
	suite.NoError(err)
	suite.Equal(int64(120), total)
	suite.Len(page4, 0)
}

func (suite *TaskServiceTestSuite) TestSetAttachment() {
	task := suite.createTask(suite.ownerA, "With file", false)

	updated, err := suite.service.SetAttachment(suite.ownerA, task.ID, "abc123.png")
	suite.NoError(err)
	suite.Equal("abc123.png", updated.AttachmentFilename)

	found, err := suite.service.GetTask(suite.ownerA, task.ID)
	suite.NoError(err)
	suite.Equal("abc123.png", found.AttachmentFilename)
}

func (suite *TaskServiceTestSuite) TestSetAttachment_OtherOwnerIsNotFound() {
	task := suite.createTask(suite.ownerA, "With file", false)

	_, err := suite.service.SetAttachment(suite.ownerB, task.ID, "abc123.png")
	suite.ErrorIs(err, ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) generatingService(generator TaskGenerator) *TaskService {
	return NewTaskService(repository.NewTaskRepository(suite.db), generator)
}

func (suite *TaskServiceTestSuite) TestGenerateTasks_NotConfigured() {
	_, err := suite.service.GenerateTasks(context.Background(), suite.ownerA, "some notes")
	suite.ErrorIs(err, ErrAIServiceNotConfigured)
}

func (suite *TaskServiceTestSuite) TestGenerateTasks_CreatesOwnedTasks() {
	service := suite.generatingService(&stubTaskGenerator{tasks: []GeneratedTask{
		{Title: "Buy milk", Description: "2 liters"},
		{Title: "Call dentist"},
	}})

	created, err := service.GenerateTasks(context.Background(), suite.ownerA, "milk and dentist")
	suite.NoError(err)
	suite.Require().Len(created, 2)
	suite.Equal(suite.ownerA, created[0].OwnerID)
	suite.Equal("Buy milk", created[0].Title)

	_, total, err := service.ListTasks(ListTasksInput{OwnerID: suite.ownerA, Page: 1, PageSize: 50})
	suite.NoError(err)
	suite.Equal(int64(2), total)
}

func (suite *TaskServiceTestSuite) TestGenerateTasks_BlankTitlesSkipped() {
	service := suite.generatingService(&stubTaskGenerator{tasks: []GeneratedTask{
		{Title: "   "},
		{Title: "Real task"},
	}})

	created, err := service.GenerateTasks(context.Background(), suite.ownerA, "text")
	suite.NoError(err)
	suite.Require().Len(created, 1)
	suite.Equal("Real task", created[0].Title)
}

func (suite *TaskServiceTestSuite) TestGenerateTasks_NoSuggestions() {
	service := suite.generatingService(&stubTaskGenerator{})

	_, err := service.GenerateTasks(context.Background(), suite.ownerA, "nothing actionable")
	suite.ErrorIs(err, ErrAINoTasksGenerated)
}

func (suite *TaskServiceTestSuite) TestGenerateTasks_OverLimitBatchRejected() {
	suggestions := make([]GeneratedTask, constants.MaxAIGeneratedTasks+1)
	for i := range suggestions {
		suggestions[i] = GeneratedTask{Title: fmt.Sprintf("Task %d", i)}
	}
	service := suite.generatingService(&stubTaskGenerator{tasks: suggestions})

	_, err := service.GenerateTasks(context.Background(), suite.ownerA, "a wall of text")
	suite.Error(err)

	// The whole batch is rejected; nothing is persisted
	_, total, err := service.ListTasks(ListTasksInput{OwnerID: suite.ownerA, Page: 1, PageSize: 50})
	suite.NoError(err)
	suite.Equal(int64(0), total)
}

// TestSuite runs the test suite
func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
