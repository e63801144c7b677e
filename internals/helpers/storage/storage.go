package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"majalahku_backend/internals/configs"
	helper "majalahku_backend/internals/helpers"
)

/*
BlobService is the storage facade used by controllers. Two backends:

  - "oss"   → Aliyun OSS bucket (production)
  - "local" → directory on disk (development, self-hosted)

Selected via STORAGE_DRIVER.
*/
type BlobService interface {
	// Upload stores data under key and returns the public URL.
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (publicURL string, err error)

	// Open streams an object back.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	Delete(ctx context.Context, key string) error

	// MoveToTrash relocates the object under the trash/ prefix so the
	// reaper can drop it after the retention window.
	MoveToTrash(ctx context.Context, key string) (trashKey string, err error)

	// ListTrash returns trash object keys older than cutoff.
	ListTrash(ctx context.Context, cutoff time.Time) ([]string, error)

	PublicURL(key string) string
}

// NewBlobServiceFromEnv picks the backend from STORAGE_DRIVER.
func NewBlobServiceFromEnv(prefix string) (BlobService, error) {
	switch strings.ToLower(configs.GetEnv("STORAGE_DRIVER", "local")) {
	case "oss":
		return NewOSSBlobServiceFromEnv(prefix)
	case "local", "":
		return NewLocalBlobServiceFromEnv(prefix)
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", configs.GetEnv("STORAGE_DRIVER"))
	}
}

// BuildObjectKey derives a collision-free object key:
// <dir>/<slugified-name>-<uuid8><ext>
func BuildObjectKey(dir, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = helper.GenerateSlug(base)
	if base == "" {
		base = "file"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	key := fmt.Sprintf("%s-%s%s", base, suffix, ext)
	dir = strings.Trim(dir, "/")
	if dir != "" {
		key = dir + "/" + key
	}
	return key
}

// ContentTypeByName falls back to octet-stream.
func ContentTypeByName(filename string) string {
	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return ct
}

// MaxUploadSize reads UPLOAD_MAX_MB (default 15 MB).
func MaxUploadSize() int64 {
	mb := 15
	if v := configs.GetEnv("UPLOAD_MAX_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			mb = n
		}
	}
	return int64(mb) * 1024 * 1024
}

// TrashRetention reads RETENTION_DAYS (default 30).
func TrashRetention() time.Duration {
	days := envInt("RETENTION_DAYS", 30)
	return time.Duration(days) * 24 * time.Hour
}

const trashPrefix = "trash/"

func trashKeyFor(key string) string {
	return trashPrefix + time.Now().UTC().Format("20060102") + "/" + strings.TrimPrefix(key, "/")
}

/* =======================================================================
   Mock for unit tests
======================================================================= */

type MockBlobService struct {
	UploadFn      func(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	OpenFn        func(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteFn      func(ctx context.Context, key string) error
	MoveToTrashFn func(ctx context.Context, key string) (string, error)
	ListTrashFn   func(ctx context.Context, cutoff time.Time) ([]string, error)
	PublicURLFn   func(key string) string
}

func (m *MockBlobService) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	if m.UploadFn == nil {
		return "", errors.New("not implemented")
	}
	return m.UploadFn(ctx, key, r, contentType)
}

func (m *MockBlobService) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if m.OpenFn == nil {
		return nil, errors.New("not implemented")
	}
	return m.OpenFn(ctx, key)
}

func (m *MockBlobService) Delete(ctx context.Context, key string) error {
	if m.DeleteFn == nil {
		return errors.New("not implemented")
	}
	return m.DeleteFn(ctx, key)
}

func (m *MockBlobService) MoveToTrash(ctx context.Context, key string) (string, error) {
	if m.MoveToTrashFn == nil {
		return "", errors.New("not implemented")
	}
	return m.MoveToTrashFn(ctx, key)
}

func (m *MockBlobService) ListTrash(ctx context.Context, cutoff time.Time) ([]string, error) {
	if m.ListTrashFn == nil {
		return nil, errors.New("not implemented")
	}
	return m.ListTrashFn(ctx, cutoff)
}

func (m *MockBlobService) PublicURL(key string) string {
	if m.PublicURLFn == nil {
		return ""
	}
	return m.PublicURLFn(key)
}
