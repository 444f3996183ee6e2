// internals/helpers/storage/local_service.go
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"acex_backend/internals/configs"
)

// LocalService: implementasi BlobService di disk lokal.
// File disajikan oleh Fiber static handler di /uploads.
type LocalService struct {
	BaseDir string // mis. "./uploads"
	BaseURL string // mis. "http://localhost:3000/uploads"
}

func NewLocalServiceFromEnv() (*LocalService, error) {
	baseDir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", baseDir, err)
	}
	baseURL := strings.TrimRight(configs.PublicBaseURL, "/") + "/uploads"
	return &LocalService{BaseDir: baseDir, BaseURL: baseURL}, nil
}

func (s *LocalService) UploadImage(ctx context.Context, dir, filename string, r io.Reader) (*UploadedImage, error) {
	processed, err := ProcessImage(r, filename)
	if err != nil {
		return nil, err
	}

	key := buildObjectKey(dir, webpName(filename))
	thumbKey := thumbName(key)

	if err := s.writeFile(key, processed.Data); err != nil {
		return nil, err
	}
	if err := s.writeFile(thumbKey, processed.Thumb); err != nil {
		_ = os.Remove(s.pathFor(key))
		return nil, err
	}

	return &UploadedImage{
		URL:          s.PublicURL(key),
		ThumbnailURL: s.PublicURL(thumbKey),
		Size:         int64(len(processed.Data)),
	}, nil
}

func (s *LocalService) UploadFile(ctx context.Context, dir, filename string, r io.Reader) (string, error) {
	all, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return "", err
	}
	if int64(len(all)) > MaxUploadSize {
		return "", fmt.Errorf("file too large (max %d bytes)", MaxUploadSize)
	}

	key := buildObjectKey(dir, filename)
	if err := s.writeFile(key, all); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *LocalService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := s.keyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	if err := os.Remove(s.pathFor(key)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

func (s *LocalService) Download(ctx context.Context, publicURL string) ([]byte, string, error) {
	key, err := s.keyFromPublicURL(publicURL)
	if err != nil {
		return nil, "", err
	}
	all, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}
	return all, contentTypeFor(key), nil
}

func (s *LocalService) PublicURL(key string) string {
	return s.BaseURL + "/" + key
}

func (s *LocalService) keyFromPublicURL(publicURL string) (string, error) {
	publicURL = strings.TrimSpace(publicURL)
	if publicURL == "" {
		return "", fmt.Errorf("empty public url")
	}
	base := s.BaseURL + "/"
	if !strings.HasPrefix(publicURL, base) {
		return "", fmt.Errorf("url is not served by this storage: %s", publicURL)
	}
	key := strings.TrimPrefix(publicURL, base)
	// guard path traversal
	if strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid key: %s", key)
	}
	return key, nil
}

func (s *LocalService) pathFor(key string) string {
	return filepath.Join(s.BaseDir, filepath.FromSlash(key))
}

func (s *LocalService) writeFile(key string, data []byte) error {
	path := s.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
