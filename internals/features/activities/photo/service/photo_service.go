// internals/features/activities/photo/service/photo_service.go
package service

import (
	"context"
	"errors"
	"io"
	"log"
	"strconv"

	"gorm.io/gorm"

	"acex_backend/internals/features/activities/photo/model"
	"acex_backend/internals/helpers/storage"
)

var (
	ErrPhotoNotFound    = errors.New("foto tidak ditemukan")
	ErrActivityNotFound = errors.New("aktivitas tidak ditemukan")
)

type PhotoService struct {
	DB   *gorm.DB
	Blob storage.BlobService
}

func NewPhotoService(db *gorm.DB, blob storage.BlobService) *PhotoService {
	return &PhotoService{DB: db, Blob: blob}
}

func (s *PhotoService) ListByActivity(activityID int) ([]model.ActivityPhotoModel, error) {
	var rows []model.ActivityPhotoModel
	err := s.DB.
		Where("activity_photo_activity_id = ?", activityID).
		Order("activity_photo_uploaded_at ASC").
		Find(&rows).Error
	return rows, err
}

// Upload memproses satu gambar (resize + thumbnail webp) dan menyimpan barisnya.
func (s *PhotoService) Upload(ctx context.Context, activityID int, filename string, r io.Reader, description *string) (*model.ActivityPhotoModel, error) {
	var count int64
	if err := s.DB.Table("activities").
		Where("activity_id = ?", activityID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrActivityNotFound
	}

	dir := "activities/" + strconv.Itoa(activityID) + "/photos"
	img, err := s.Blob.UploadImage(ctx, dir, filename, r)
	if err != nil {
		return nil, err
	}

	row := model.ActivityPhotoModel{
		ActivityPhotoActivityID:  activityID,
		ActivityPhotoURL:         img.URL,
		ActivityPhotoDescription: description,
		ActivityPhotoSizeBytes:   img.Size,
	}
	if img.ThumbnailURL != "" {
		row.ActivityPhotoThumbURL = &img.ThumbnailURL
	}
	if err := s.DB.Create(&row).Error; err != nil {
		// baris gagal, bersihkan file yang sudah terunggah
		if delErr := s.Blob.DeleteByPublicURL(ctx, img.URL); delErr != nil {
			log.Printf("[WARN] gagal bersihkan foto yatim %s: %v", img.URL, delErr)
		}
		if img.ThumbnailURL != "" {
			s.Blob.DeleteByPublicURL(ctx, img.ThumbnailURL)
		}
		return nil, err
	}
	return &row, nil
}

// Delete menghapus baris lalu filenya (best effort).
func (s *PhotoService) Delete(ctx context.Context, photoID int) error {
	var row model.ActivityPhotoModel
	if err := s.DB.First(&row, "activity_photo_id = ?", photoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}

	if err := s.DB.Delete(&model.ActivityPhotoModel{}, "activity_photo_id = ?", photoID).Error; err != nil {
		return err
	}

	if s.Blob != nil {
		if err := s.Blob.DeleteByPublicURL(ctx, row.ActivityPhotoURL); err != nil {
			log.Printf("[WARN] gagal hapus file foto %d: %v", photoID, err)
		}
		if row.ActivityPhotoThumbURL != nil && *row.ActivityPhotoThumbURL != "" {
			if err := s.Blob.DeleteByPublicURL(ctx, *row.ActivityPhotoThumbURL); err != nil {
				log.Printf("[WARN] gagal hapus thumbnail foto %d: %v", photoID, err)
			}
		}
	}
	return nil
}
