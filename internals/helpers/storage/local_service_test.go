package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func newTestLocalService(t *testing.T) *LocalService {
	t.Helper()
	return &LocalService{
		BaseDir: t.TempDir(),
		BaseURL: "http://localhost:3000/uploads",
	}
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestLocalUploadImageCreatesOriginalAndThumbnail(t *testing.T) {
	svc := newTestLocalService(t)
	ctx := context.Background()

	up, err := svc.UploadImage(ctx, "activities/brochures", "Cartel Primavera.PNG", bytes.NewReader(pngBytes(t, 800, 600)))
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	if !strings.HasPrefix(up.URL, svc.BaseURL+"/") {
		t.Fatalf("url %q is not under base %q", up.URL, svc.BaseURL)
	}
	if !strings.HasSuffix(up.URL, ".webp") {
		t.Fatalf("expected .webp url, got %q", up.URL)
	}
	if !strings.Contains(up.ThumbnailURL, "_thumb") {
		t.Fatalf("expected thumbnail url, got %q", up.ThumbnailURL)
	}
	if up.Size <= 0 {
		t.Fatalf("expected positive size, got %d", up.Size)
	}

	data, ct, err := svc.Download(ctx, up.URL)
	if err != nil {
		t.Fatalf("Download original: %v", err)
	}
	if ct != "image/webp" {
		t.Fatalf("content type = %q, want image/webp", ct)
	}
	if int64(len(data)) != up.Size {
		t.Fatalf("downloaded %d bytes, want %d", len(data), up.Size)
	}

	thumb, _, err := svc.Download(ctx, up.ThumbnailURL)
	if err != nil {
		t.Fatalf("Download thumbnail: %v", err)
	}
	if len(thumb) >= len(data) {
		t.Fatalf("thumbnail (%d bytes) should be smaller than original (%d bytes)", len(thumb), len(data))
	}
}

func TestLocalUploadImageRejectsUnsupportedFormat(t *testing.T) {
	svc := newTestLocalService(t)

	_, err := svc.UploadImage(context.Background(), "x", "notes.txt", strings.NewReader("this is not an image"))
	if err == nil {
		t.Fatal("expected error for non-image upload")
	}
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLocalUploadFileAndDelete(t *testing.T) {
	svc := newTestLocalService(t)
	ctx := context.Background()

	url, err := svc.UploadFile(ctx, "activities/contracts", "contrato firmado.pdf", strings.NewReader("%PDF-1.4 fake"))
	if err != nil {
		t.Fatalf("UploadFile: %v", err)
	}
	if _, ct, err := svc.Download(ctx, url); err != nil || ct != "application/pdf" {
		t.Fatalf("Download = ct %q, err %v", ct, err)
	}

	if err := svc.DeleteByPublicURL(ctx, url); err != nil {
		t.Fatalf("DeleteByPublicURL: %v", err)
	}
	if _, _, err := svc.Download(ctx, url); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// idempotent: hapus lagi tidak error
	if err := svc.DeleteByPublicURL(ctx, url); err != nil {
		t.Fatalf("second delete should be no-op, got %v", err)
	}
}

func TestLocalDeleteRejectsForeignURL(t *testing.T) {
	svc := newTestLocalService(t)

	if err := svc.DeleteByPublicURL(context.Background(), "https://elsewhere.example.com/file.png"); err == nil {
		t.Fatal("expected error for url outside base")
	}
}
