package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sachin796/Worktopia/internal/apperrors"
	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/google/uuid"
)

var allowedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

type uploadService struct {
	BaseService
	dir      string
	maxBytes int64
}

// NewUploadService stores uploaded images under dir.
func NewUploadService(dir string, maxBytes int64) portssvc.UploadSvc {
	return &uploadService{dir: dir, maxBytes: maxBytes}
}

// SaveUpload writes content as <uuid><ext> and returns that name.
func (s *uploadService) SaveUpload(ctx context.Context, originalName string, size int64, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return "", apperrors.NewValidationFailedError(fmt.Sprintf("file type %q is not allowed", ext))
	}
	if s.maxBytes > 0 && size > s.maxBytes {
		return "", apperrors.NewValidationFailedError(fmt.Sprintf("file exceeds %d bytes", s.maxBytes))
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	reader := content
	if s.maxBytes > 0 {
		reader = io.LimitReader(content, s.maxBytes+1)
	}
	written, err := io.Copy(f, reader)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		s.LogError(ctx, err, "Failed to write upload", slog.String("file", name))
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if s.maxBytes > 0 && written > s.maxBytes {
		_ = os.Remove(path)
		return "", apperrors.NewValidationFailedError(fmt.Sprintf("file exceeds %d bytes", s.maxBytes))
	}

	s.LogInfo(ctx, "Upload stored", slog.String("file", name), slog.Int64("bytes", written))
	return name, nil
}
