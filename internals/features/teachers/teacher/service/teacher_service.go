// internals/features/teachers/teacher/service/teacher_service.go
package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"acex_backend/internals/features/teachers/teacher/model"
	"acex_backend/internals/helpers/storage"
)

var (
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrTeacherHasUser  = errors.New("teacher is linked to a user account")
)

type TeacherService struct {
	DB   *gorm.DB
	Blob storage.BlobService
}

func NewTeacherService(db *gorm.DB, blob storage.BlobService) *TeacherService {
	return &TeacherService{DB: db, Blob: blob}
}

// Delete hapus guru + baris join aktivitas dalam satu transaksi.
// File foto dihapus best-effort SETELAH commit; kegagalan storage tidak
// boleh membatalkan delete di DB.
func (s *TeacherService) Delete(ctx context.Context, id uuid.UUID) error {
	var teacher model.TeacherModel
	if err := s.DB.First(&teacher, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		return err
	}

	var linked int64
	if err := s.DB.Table("users").Where("user_teacher_id = ?", id).Count(&linked).Error; err != nil {
		return err
	}
	if linked > 0 {
		return ErrTeacherHasUser
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM activity_participant_teachers WHERE activity_participant_teacher_teacher_id = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM activity_responsible_teachers WHERE activity_responsible_teacher_teacher_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TeacherModel{}, "teacher_id = ?", id).Error
	})
	if err != nil {
		return err
	}

	s.deletePhotoFiles(ctx, &teacher)
	return nil
}

// RemovePhoto hapus file foto (original + thumbnail) dan kosongkan kolomnya.
func (s *TeacherService) RemovePhoto(ctx context.Context, id uuid.UUID) error {
	var teacher model.TeacherModel
	if err := s.DB.First(&teacher, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		return err
	}

	if err := s.DB.Model(&model.TeacherModel{}).
		Where("teacher_id = ?", id).
		Updates(map[string]any{
			"teacher_photo_url":       nil,
			"teacher_photo_thumb_url": nil,
		}).Error; err != nil {
		return err
	}

	s.deletePhotoFiles(ctx, &teacher)
	return nil
}

func (s *TeacherService) deletePhotoFiles(ctx context.Context, teacher *model.TeacherModel) {
	if s.Blob == nil {
		return
	}
	if teacher.TeacherPhotoURL != nil && *teacher.TeacherPhotoURL != "" {
		if err := s.Blob.DeleteByPublicURL(ctx, *teacher.TeacherPhotoURL); err != nil {
			log.Printf("[WARN] gagal hapus foto guru %s: %v", teacher.TeacherID, err)
		}
	}
	if teacher.TeacherPhotoThumb != nil && *teacher.TeacherPhotoThumb != "" {
		if err := s.Blob.DeleteByPublicURL(ctx, *teacher.TeacherPhotoThumb); err != nil {
			log.Printf("[WARN] gagal hapus thumbnail foto guru %s: %v", teacher.TeacherID, err)
		}
	}
}
