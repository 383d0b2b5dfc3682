package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"emergencyAPI/pkg/e"
)

// MaxUploadBytes caps the size of an uploaded report image.
const MaxUploadBytes = 10 << 20

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

type UploadService struct {
	uploader ImageUploader
	logger   *slog.Logger
}

func NewUploadService(uploader ImageUploader, logger *slog.Logger) *UploadService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UploadService{uploader: uploader, logger: logger}
}

// UploadImage checks the file name and size and hands the body to the image
// store. It returns the public URL of the stored image.
func (s *UploadService) UploadImage(ctx context.Context, filename string, size int64, r io.Reader) (string, error) {
	const op = "service.UploadService.UploadImage"

	if r == nil || size <= 0 {
		return "", fmt.Errorf("empty file: %w", e.ErrInvalidFile)
	}
	if size > MaxUploadBytes {
		return "", fmt.Errorf("file is larger than %d bytes: %w", MaxUploadBytes, e.ErrInvalidFile)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExt[ext] {
		return "", fmt.Errorf("extension %q not allowed: %w", ext, e.ErrInvalidFile)
	}

	url, err := s.uploader.Upload(ctx, filepath.Base(filename), io.LimitReader(r, MaxUploadBytes))
	if err != nil {
		return "", opaque(ctx, s.logger, op, err)
	}

	s.logger.InfoContext(ctx, "image uploaded", slog.String("url", url))
	return url, nil
}
