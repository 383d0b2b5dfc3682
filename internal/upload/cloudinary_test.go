package upload

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emergencyAPI/internal/config"
)

func TestNewCloudinary_DisabledWithoutCredentials(t *testing.T) {
	t.Parallel()

	_, err := NewCloudinary(config.CloudinaryConfig{CloudName: "demo"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDisabled))
}

func TestNewCloudinary_Configured(t *testing.T) {
	t.Parallel()

	c, err := NewCloudinary(config.CloudinaryConfig{
		CloudName: "demo",
		APIKey:    "key",
		APISecret: "secret",
		Folder:    "images-reports",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Equal(t, "images-reports", c.folder)
}

func TestPublicID(t *testing.T) {
	t.Parallel()

	id := publicID("../some dir/Fire photo.JPG")
	assert.True(t, strings.HasPrefix(id, "Fire-photo-"), id)
	assert.Len(t, id, len("Fire-photo-")+8)

	assert.Len(t, publicID(".jpg"), 36)
	assert.LessOrEqual(t, len(publicID(strings.Repeat("a", 100)+".png")), 49)
}
