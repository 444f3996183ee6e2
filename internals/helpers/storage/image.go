// internals/helpers/storage/image.go
package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	// batas dimensi gambar utama (keep aspect)
	imageMaxW = 1920
	imageMaxH = 1080
	// lebar thumbnail tetap
	thumbWidth = 300

	imageQuality = float32(80)
	thumbQuality = float32(70)
)

// ProcessedImage: hasil re-encode webp (original + thumbnail)
type ProcessedImage struct {
	Data  []byte
	Thumb []byte
}

// decodeImage sniff MIME 512B dulu, fallback by extension
func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("%w: %s / %s", ErrUnsupportedFormat, ct, ext)
}

func encodeWebP(img image.Image, quality float32) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ProcessImage: baca → decode → downscale (cap 1920x1080) → encode webp
// + thumbnail lebar 300px. Gambar kecil tidak di-upscale.
func ProcessImage(r io.Reader, filename string) (*ProcessedImage, error) {
	all, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(all)) > MaxUploadSize {
		return nil, fmt.Errorf("file too large (max %d bytes)", MaxUploadSize)
	}

	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() > imageMaxW || b.Dy() > imageMaxH {
		img = imaging.Fit(img, imageMaxW, imageMaxH, imaging.CatmullRom)
	}

	data, err := encodeWebP(img, imageQuality)
	if err != nil {
		return nil, err
	}

	thumbImg := img
	if img.Bounds().Dx() > thumbWidth {
		thumbImg = imaging.Resize(img, thumbWidth, 0, imaging.CatmullRom)
	}
	thumb, err := encodeWebP(thumbImg, thumbQuality)
	if err != nil {
		return nil, err
	}

	return &ProcessedImage{Data: data, Thumb: thumb}, nil
}

// webpName ganti ekstensi jadi .webp
func webpName(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if base == "" {
		base = "image"
	}
	return base + ".webp"
}

// thumbName sisipkan suffix _thumb sebelum ekstensi
func thumbName(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	return base + "_thumb" + ext
}
