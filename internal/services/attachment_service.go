package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrNoAttachment       = errors.New("task has no attachment")
)

// allowedExtensions is the image-only upload filter
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
}

// AttachmentService manages the path-addressable blob area for uploads.
// The root directory is injected configuration; business logic never
// branches on the environment.
type AttachmentService struct {
	root string
}

// NewAttachmentService creates an AttachmentService rooted at dir
func NewAttachmentService(dir string) *AttachmentService {
	return &AttachmentService{root: dir}
}

// GenerateFilename validates the original name against the image filter and
// returns a collision-free generated filename keeping the original extension
func (s *AttachmentService) GenerateFilename(original string) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrFileTypeNotAllowed
	}
	return uuid.New().String() + ext, nil
}

// Store writes the payload under the generated filename. Nothing is written
// for filenames that did not pass GenerateFilename.
func (s *AttachmentService) Store(src io.Reader, filename string) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.root, filename))
	if err != nil {
		return fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write attachment file: %w", err)
	}

	return nil
}

// Remove deletes a stored attachment. Removing an absent file is not an error.
func (s *AttachmentService) Remove(filename string) error {
	if filename == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.root, filepath.Base(filename)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove attachment file: %w", err)
	}

	return nil
}

// Resolve returns the absolute path of a stored attachment
func (s *AttachmentService) Resolve(filename string) (string, error) {
	if filename == "" {
		return "", ErrNoAttachment
	}

	// The stored filename is always generated, but never trust it as a path
	path := filepath.Join(s.root, filepath.Base(filename))
	if _, err := os.Stat(path); err != nil {
		return "", ErrAttachmentNotFound
	}

	return path, nil
}
