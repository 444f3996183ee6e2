// internals/helpers/storage/storage.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"acex_backend/internals/configs"
)

var (
	// ErrUnsupportedFormat: file bukan jpg/png/webp
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrNotFound: objek tidak ada di storage
	ErrNotFound = errors.New("object not found")
)

// batas ukuran upload (guard ringan, controller tetap bisa cek lebih dulu)
const MaxUploadSize = int64(10 * 1024 * 1024)

// UploadedImage hasil upload gambar (original + thumbnail)
type UploadedImage struct {
	URL          string
	ThumbnailURL string
	Size         int64
}

// BlobService abstraksi penyimpanan file (OSS atau disk lokal).
// Semua URL yang dikembalikan adalah public URL siap simpan di DB.
type BlobService interface {
	// UploadImage: re-encode ke webp + buat thumbnail 300px
	UploadImage(ctx context.Context, dir, filename string, r io.Reader) (*UploadedImage, error)
	// UploadFile: upload apa adanya (pdf, dokumen, dll)
	UploadFile(ctx context.Context, dir, filename string, r io.Reader) (string, error)
	// DeleteByPublicURL: hapus objek berdasarkan public URL (idempotent)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
	// Download: ambil isi objek + content type
	Download(ctx context.Context, publicURL string) ([]byte, string, error)
}

// NewFromEnv memilih implementasi berdasarkan STORAGE_DRIVER (local|oss).
func NewFromEnv() (BlobService, error) {
	driver := strings.ToLower(strings.TrimSpace(configs.StorageDriver))
	switch driver {
	case "", "local":
		return NewLocalServiceFromEnv()
	case "oss":
		return NewOSSServiceFromEnv("")
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER: %q", driver)
	}
}
