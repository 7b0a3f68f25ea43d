package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID                 string    `gorm:"type:uuid;primarykey" json:"id"`
	Title              string    `gorm:"not null" json:"title"`
	Description        string    `gorm:"type:text" json:"description"`
	Finished           bool      `gorm:"not null;default:false" json:"finished"`
	OwnerID            string    `gorm:"type:uuid;not null;index" json:"owner_id"`
	AttachmentFilename string    `gorm:"type:varchar(255)" json:"attachment_filename,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// BeforeCreate assigns the task ID server-side so clients can never choose it
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
