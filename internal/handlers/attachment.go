package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mfalves/todo-list-api/internal/dto"
	apierrors "github.com/mfalves/todo-list-api/internal/errors"
	"github.com/mfalves/todo-list-api/internal/middleware"
	"github.com/mfalves/todo-list-api/internal/services"
)

type AttachmentHandler struct {
	taskService       *services.TaskService
	attachmentService *services.AttachmentService
}

func NewAttachmentHandler(taskService *services.TaskService, attachmentService *services.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{
		taskService:       taskService,
		attachmentService: attachmentService,
	}
}

// Upload stores an image attachment. When task_id is supplied the task must
// exist and belong to the caller, and the generated filename is recorded on
// it. Nothing is written to the blob area before all checks pass.
func (h *AttachmentHandler) Upload(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apierrors.ValidationError(c, "File is required")
		return
	}

	var taskID *string
	if raw := c.Query("task_id"); raw != "" {
		if _, err := h.taskService.GetTask(userID, raw); err != nil {
			respondTaskError(c, err)
			return
		}
		taskID = &raw
	}

	filename, err := h.attachmentService.GenerateFilename(fileHeader.Filename)
	if err != nil {
		apierrors.ValidationError(c, "Only image files are allowed")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		apierrors.ValidationError(c, "Unreadable file")
		return
	}
	defer src.Close()

	if err := h.attachmentService.Store(src, filename); err != nil {
		apierrors.StorageError(c)
		return
	}

	if taskID != nil {
		if _, err := h.taskService.SetAttachment(userID, *taskID, filename); err != nil {
			// the blob must not outlive a failed association
			_ = h.attachmentService.Remove(filename)
			respondTaskError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, dto.UploadResponse{
		TaskID:   taskID,
		Filename: filename,
	})
}

// Download streams the attachment recorded on the caller's task. Retrieval
// goes through the stored filename, never a reconstructed path.
func (h *AttachmentHandler) Download(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	task, err := h.taskService.GetTask(userID, c.Param("taskId"))
	if err != nil {
		respondTaskError(c, err)
		return
	}

	path, err := h.attachmentService.Resolve(task.AttachmentFilename)
	if err != nil {
		apierrors.NotFound(c, "Attachment not found")
		return
	}

	c.File(path)
}
