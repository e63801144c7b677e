package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"majalahku_backend/internals/configs"
)

/* =======================================================================
   Local-disk backend (development / self-hosted)
======================================================================= */

type LocalBlobService struct {
	Root    string // e.g. ./uploads
	BaseURL string // e.g. http://localhost:3000/files
	Prefix  string
}

func NewLocalBlobServiceFromEnv(prefix string) (*LocalBlobService, error) {
	root := configs.GetEnv("LOCAL_STORAGE_ROOT", "./uploads")
	baseURL := configs.GetEnv("LOCAL_STORAGE_BASE_URL", "/files")
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &LocalBlobService{
		Root:    root,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Prefix:  strings.Trim(prefix, "/"),
	}, nil
}

func (s *LocalBlobService) fullKey(key string) string {
	key = strings.TrimPrefix(key, "/")
	if s.Prefix != "" && !strings.HasPrefix(key, s.Prefix+"/") && !strings.HasPrefix(key, trashPrefix) {
		return s.Prefix + "/" + key
	}
	return key
}

func (s *LocalBlobService) path(key string) string {
	// object keys are generated by BuildObjectKey, but clean anyway
	return filepath.Join(s.Root, filepath.Clean("/"+s.fullKey(key)))
}

func (s *LocalBlobService) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("empty key")
	}
	p := s.path(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(p)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *LocalBlobService) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return os.Open(s.path(key))
}

func (s *LocalBlobService) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *LocalBlobService) MoveToTrash(ctx context.Context, key string) (string, error) {
	src := s.path(key)
	dst := trashKeyFor(s.fullKey(key))
	dstPath := filepath.Join(s.Root, filepath.Clean("/"+dst))
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return "", err
	}
	if err := os.Rename(src, dstPath); err != nil {
		return "", err
	}
	// rename keeps the upload-time mtime; the retention clock must start
	// at trash time or old attachments get reaped on the next sweep
	now := time.Now()
	if err := os.Chtimes(dstPath, now, now); err != nil {
		return "", err
	}
	return dst, nil
}

func (s *LocalBlobService) ListTrash(ctx context.Context, cutoff time.Time) ([]string, error) {
	trashRoot := filepath.Join(s.Root, trashPrefix)
	var keys []string
	err := filepath.Walk(trashRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		if info.ModTime().Before(cutoff) {
			rel, rerr := filepath.Rel(s.Root, path)
			if rerr != nil {
				return rerr
			}
			keys = append(keys, filepath.ToSlash(rel))
		}
		return nil
	})
	if os.IsNotExist(err) {
		return nil, nil
	}
	return keys, err
}

func (s *LocalBlobService) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	return s.BaseURL + "/" + s.fullKey(key)
}
