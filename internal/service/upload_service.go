package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"comitefd/internal/config"
	"comitefd/internal/storage"
)

type UploadService interface {
	Upload(ctx context.Context, folder, fileName string, file io.Reader, size int64) (string, error)
}

type uploadService struct {
	store storage.Storage
	cfg   *config.Config
}

// NewUploadService accepts a nil store when the image host credentials
// are missing; uploads then fail with ErrNotConfigured.
func NewUploadService(store storage.Storage, cfg *config.Config) UploadService {
	return &uploadService{store: store, cfg: cfg}
}

func (s *uploadService) Upload(ctx context.Context, folder, fileName string, file io.Reader, size int64) (string, error) {
	if s.store == nil {
		return "", ErrNotConfigured
	}

	folder = strings.TrimSpace(folder)
	if folder == "" {
		folder = s.cfg.UploadFolder
	}

	url, err := s.store.UploadFile(ctx, folder, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	return url, nil
}
