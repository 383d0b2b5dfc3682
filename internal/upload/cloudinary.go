// Package upload stores report photos in Cloudinary.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"emergencyAPI/internal/config"
	"emergencyAPI/pkg/e"
)

// ErrDisabled is returned when no Cloudinary credentials are configured.
var ErrDisabled = errors.New("image uploads are disabled")

type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
	logger *slog.Logger
}

func NewCloudinary(cfg config.CloudinaryConfig, logger *slog.Logger) (*Cloudinary, error) {
	const op = "upload.NewCloudinary"

	if !cfg.Enabled() {
		return nil, fmt.Errorf("%s: %w", op, ErrDisabled)
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &Cloudinary{cld: cld, folder: cfg.Folder, logger: logger}, nil
}

// Upload stores r under a fresh public id and returns its https URL.
func (c *Cloudinary) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	const op = "upload.Cloudinary.Upload"

	resp, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:   c.folder,
		PublicID: publicID(filename),
	})
	if err != nil {
		c.logger.Error("cloudinary upload failed", slog.String("op", op), slog.String("file", filename), slog.Any("error", err))
		return "", e.WrapError(ctx, op, err)
	}
	if resp.Error.Message != "" {
		c.logger.Error("cloudinary rejected upload", slog.String("op", op), slog.String("file", filename), slog.String("error", resp.Error.Message))
		return "", fmt.Errorf("%s: %s: %w", op, resp.Error.Message, e.ErrInternal)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("%s: empty url in response: %w", op, e.ErrInternal)
	}

	c.logger.Info("image uploaded", slog.String("public_id", resp.PublicID), slog.String("url", resp.SecureURL))
	return resp.SecureURL, nil
}

func publicID(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, base)
	if len(base) > 40 {
		base = base[:40]
	}
	id := uuid.NewString()
	if base == "" || base == "." {
		return id
	}
	return base + "-" + id[:8]
}
