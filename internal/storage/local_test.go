package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageUpload(t *testing.T) {
	dir := t.TempDir()

	local, err := NewLocalStorage(dir, "http://localhost:3000/uploads/")
	require.NoError(t, err)

	url, err := local.Upload(context.Background(), "proker", "foto acara.jpg", strings.NewReader("jpegdata"), "image/jpeg")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:3000/uploads/proker/"), url)
	assert.True(t, strings.HasSuffix(url, "-foto_acara.jpg"), url)

	entries, err := os.ReadDir(filepath.Join(dir, "proker"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	content, err := os.ReadFile(filepath.Join(dir, "proker", entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "jpegdata", string(content))
}

func TestLocalStorageUploadsGetUniqueNames(t *testing.T) {
	dir := t.TempDir()

	local, err := NewLocalStorage(dir, "http://localhost:3000/uploads")
	require.NoError(t, err)

	ctx := context.Background()
	first, err := local.Upload(ctx, "members", "foto.png", strings.NewReader("a"), "image/png")
	require.NoError(t, err)
	second, err := local.Upload(ctx, "members", "foto.png", strings.NewReader("b"), "image/png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "foto_acara_2024.jpg", sanitizeFilename("foto acara/2024.jpg"))
	assert.Equal(t, "rapat.png", sanitizeFilename("rapat.png"))
}
