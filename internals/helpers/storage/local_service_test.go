package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalService(t *testing.T) *LocalBlobService {
	t.Helper()
	return &LocalBlobService{
		Root:    t.TempDir(),
		BaseURL: "/files",
	}
}

func TestLocalUploadOpenDelete(t *testing.T) {
	s := newLocalService(t)
	ctx := context.Background()

	url, err := s.Upload(ctx, "attachments/a/photo.webp", strings.NewReader("payload"), "image/webp")
	require.NoError(t, err)
	assert.Equal(t, "/files/attachments/a/photo.webp", url)

	rc, err := s.Open(ctx, "attachments/a/photo.webp")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	require.NoError(t, s.Delete(ctx, "attachments/a/photo.webp"))
	// deleting a missing object is not an error
	assert.NoError(t, s.Delete(ctx, "attachments/a/photo.webp"))
}

func TestMoveToTrashRestartsRetentionClock(t *testing.T) {
	s := newLocalService(t)
	ctx := context.Background()

	key := "attachments/a/old-photo.webp"
	_, err := s.Upload(ctx, key, strings.NewReader("payload"), "image/webp")
	require.NoError(t, err)

	// object has been stored far longer than any retention window
	uploadedAt := time.Now().Add(-40 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(s.Root, filepath.FromSlash(key)), uploadedAt, uploadedAt))

	trashKey, err := s.MoveToTrash(ctx, key)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(trashKey, trashPrefix))

	// just trashed: a 30-day cutoff must not list it, no matter how old
	// the upload was
	cutoff := time.Now().Add(-30 * 24 * time.Hour)
	keys, err := s.ListTrash(ctx, cutoff)
	require.NoError(t, err)
	assert.Empty(t, keys)

	// once the trash copy itself ages past the window it becomes eligible
	trashedAt := time.Now().Add(-31 * 24 * time.Hour)
	trashPath := filepath.Join(s.Root, filepath.FromSlash(trashKey))
	require.NoError(t, os.Chtimes(trashPath, trashedAt, trashedAt))

	keys, err = s.ListTrash(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, []string{trashKey}, keys)
}

func TestListTrashEmptyWhenNoTrashDir(t *testing.T) {
	s := newLocalService(t)
	keys, err := s.ListTrash(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, keys)
}
