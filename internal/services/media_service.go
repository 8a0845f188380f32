package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/whvsdan/theboardroom/internal/config"
	"github.com/whvsdan/theboardroom/internal/storage"
	"github.com/whvsdan/theboardroom/pkg/apperrors"
)

// MediaService handles blog image uploads.
type MediaService interface {
	UploadBlogImage(ctx context.Context, header *multipart.FileHeader) (string, error)
}

type mediaService struct {
	store storage.Storage
}

func NewMediaService(store storage.Storage) MediaService {
	return &mediaService{store: store}
}

// UploadBlogImage stores the file under blog-images/ with a millisecond
// timestamp prefix for uniqueness and returns its public URL.
func (s *mediaService) UploadBlogImage(ctx context.Context, header *multipart.FileHeader) (string, error) {
	cfg := config.GetConfig()

	if header.Size > cfg.Upload.MaxSize {
		return "", apperrors.NewBadRequestError(
			fmt.Sprintf("File too large: max %d bytes", cfg.Upload.MaxSize))
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedType(contentType, cfg.Upload.AllowedTypes) {
		return "", apperrors.NewBadRequestError("Unsupported file type: " + contentType)
	}

	file, err := header.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer file.Close()

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(header.Filename))
	path := filepath.Join("blog-images", name)

	if err := s.store.Save(ctx, path, file, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}

func allowedType(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if t == contentType {
			return true
		}
	}
	return false
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.ReplaceAll(name, " ", "_")
}
