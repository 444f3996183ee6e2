package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"acex_backend/internals/features/teachers/teacher/model"
	"acex_backend/internals/helpers/storage"
)

type fakeBlob struct {
	deleted []string
}

func (f *fakeBlob) UploadImage(ctx context.Context, dir, filename string, r io.Reader) (*storage.UploadedImage, error) {
	return &storage.UploadedImage{URL: "http://fake/" + dir + "/" + filename}, nil
}

func (f *fakeBlob) UploadFile(ctx context.Context, dir, filename string, r io.Reader) (string, error) {
	return "http://fake/" + dir + "/" + filename, nil
}

func (f *fakeBlob) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	f.deleted = append(f.deleted, publicURL)
	return nil
}

func (f *fakeBlob) Download(ctx context.Context, publicURL string) ([]byte, string, error) {
	return nil, "", storage.ErrNotFound
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.TeacherModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, ddl := range []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id TEXT PRIMARY KEY,
			user_teacher_id TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS activity_participant_teachers (
			activity_participant_teacher_id INTEGER PRIMARY KEY AUTOINCREMENT,
			activity_participant_teacher_activity_id INTEGER,
			activity_participant_teacher_teacher_id TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS activity_responsible_teachers (
			activity_responsible_teacher_id INTEGER PRIMARY KEY AUTOINCREMENT,
			activity_responsible_teacher_activity_id INTEGER,
			activity_responsible_teacher_teacher_id TEXT
		)`,
	} {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("ddl: %v", err)
		}
	}
	return db
}

func seedTeacher(t *testing.T, db *gorm.DB, photoURL string) *model.TeacherModel {
	t.Helper()
	teacher := &model.TeacherModel{
		TeacherNationalID: "12345678Z",
		TeacherEmail:      "maria.lopez@example.edu",
		TeacherFirstName:  "María",
		TeacherLastName:   "López",
		TeacherIsActive:   true,
	}
	if photoURL != "" {
		thumb := photoURL + "_thumb"
		teacher.TeacherPhotoURL = &photoURL
		teacher.TeacherPhotoThumb = &thumb
	}
	if err := db.Create(teacher).Error; err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
	return teacher
}

func TestDeleteTeacherCascadesJoinRowsAndDeletesPhoto(t *testing.T) {
	db := newTestDB(t)
	blob := &fakeBlob{}
	svc := NewTeacherService(db, blob)

	teacher := seedTeacher(t, db, "http://fake/teachers/photo.webp")
	db.Exec(`INSERT INTO activity_participant_teachers (activity_participant_teacher_activity_id, activity_participant_teacher_teacher_id) VALUES (1, ?)`, teacher.TeacherID.String())
	db.Exec(`INSERT INTO activity_responsible_teachers (activity_responsible_teacher_activity_id, activity_responsible_teacher_teacher_id) VALUES (1, ?)`, teacher.TeacherID.String())

	if err := svc.Delete(context.Background(), teacher.TeacherID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var rows int64
	db.Table("activity_participant_teachers").Count(&rows)
	if rows != 0 {
		t.Fatalf("participant rows = %d, want 0", rows)
	}
	db.Table("activity_responsible_teachers").Count(&rows)
	if rows != 0 {
		t.Fatalf("responsible rows = %d, want 0", rows)
	}
	db.Model(&model.TeacherModel{}).Count(&rows)
	if rows != 0 {
		t.Fatalf("teacher rows = %d, want 0", rows)
	}

	if len(blob.deleted) != 2 {
		t.Fatalf("storage deletes = %v, want original + thumbnail", blob.deleted)
	}
}

func TestDeleteTeacherBlockedWhenUserLinked(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeacherService(db, &fakeBlob{})

	teacher := seedTeacher(t, db, "")
	db.Exec(`INSERT INTO users (user_id, user_teacher_id) VALUES (?, ?)`, uuid.NewString(), teacher.TeacherID.String())

	err := svc.Delete(context.Background(), teacher.TeacherID)
	if !errors.Is(err, ErrTeacherHasUser) {
		t.Fatalf("expected ErrTeacherHasUser, got %v", err)
	}

	var rows int64
	db.Model(&model.TeacherModel{}).Count(&rows)
	if rows != 1 {
		t.Fatal("teacher row should survive a blocked delete")
	}
}

func TestRemovePhotoClearsColumnsAndDeletesFiles(t *testing.T) {
	db := newTestDB(t)
	blob := &fakeBlob{}
	svc := NewTeacherService(db, blob)

	teacher := seedTeacher(t, db, "http://fake/teachers/old.webp")

	if err := svc.RemovePhoto(context.Background(), teacher.TeacherID); err != nil {
		t.Fatalf("RemovePhoto: %v", err)
	}

	var got model.TeacherModel
	if err := db.First(&got, "teacher_id = ?", teacher.TeacherID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.TeacherPhotoURL != nil || got.TeacherPhotoThumb != nil {
		t.Fatal("photo columns should be cleared")
	}
	if len(blob.deleted) != 2 {
		t.Fatalf("storage deletes = %v, want 2", blob.deleted)
	}
}

func TestDeleteMissingTeacherReturnsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeacherService(db, &fakeBlob{})

	if err := svc.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrTeacherNotFound) {
		t.Fatalf("expected ErrTeacherNotFound, got %v", err)
	}
}
