package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/infrastructure/storage"
)

func TestDiskLogoStore_SaveWritesFileAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewDiskLogoStore(dir, "/uploads/")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "abc123.png", strings.NewReader("fake png bytes"))
	require.NoError(t, err)

	assert.Equal(t, "/uploads/abc123.png", url, "trailing slash on baseURL must not double up")

	data, err := os.ReadFile(filepath.Join(dir, "abc123.png"))
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(data))
}

func TestDiskLogoStore_SaveStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewDiskLogoStore(dir, "/uploads")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "../../etc/evil.png", strings.NewReader("x"))
	require.NoError(t, err)

	assert.Equal(t, "/uploads/evil.png", url)
	_, err = os.Stat(filepath.Join(dir, "evil.png"))
	assert.NoError(t, err, "the file must land inside the upload dir")
}

func TestDiskLogoStore_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewDiskLogoStore(dir, "/uploads")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Save(ctx, "late.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "nothing may be written after cancellation")
}

func TestNewDiskLogoStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := storage.NewDiskLogoStore(dir, "/uploads")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
