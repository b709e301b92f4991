package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/domain/service"
)

// LocalStorageClient stores uploads on local disk under type-specific
// directories (uploads/avatar, uploads/attachment, ...).
type LocalStorageClient struct {
	baseDir string
}

func NewLocalStorageClient(baseDir string) (*LocalStorageClient, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalStorageClient{baseDir: baseDir}, nil
}

var _ service.FileUploadService = (*LocalStorageClient)(nil)

func (s *LocalStorageClient) UploadFile(ctx context.Context, file io.Reader, fileType, filename string) (string, int64, error) {
	dir := filepath.Join(s.baseDir, fileType)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, err
	}

	ext := filepath.Ext(filename)
	name := fmt.Sprintf("%d-%s%s", time.Now().Unix(), uuid.New().String(), ext)
	path := filepath.Join(dir, name)

	out, err := os.Create(path)
	if err != nil {
		return "", 0, err
	}
	defer out.Close()

	size, err := io.Copy(out, file)
	if err != nil {
		os.Remove(path)
		return "", 0, err
	}

	return path, size, nil
}

func (s *LocalStorageClient) OpenFile(ctx context.Context, path string) (io.ReadCloser, error) {
	cleaned := filepath.Clean(path)
	if !strings.HasPrefix(cleaned, filepath.Clean(s.baseDir)) {
		return nil, os.ErrNotExist
	}
	return os.Open(cleaned)
}

func (s *LocalStorageClient) DeleteFile(ctx context.Context, path string) error {
	cleaned := filepath.Clean(path)
	if !strings.HasPrefix(cleaned, filepath.Clean(s.baseDir)) {
		return os.ErrNotExist
	}
	return os.Remove(cleaned)
}
