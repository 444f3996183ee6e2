package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"acex_backend/internals/features/activities/photo/model"
	"acex_backend/internals/helpers/storage"
)

type fakeBlob struct {
	uploads int
	deleted []string
}

func (f *fakeBlob) UploadImage(ctx context.Context, dir, filename string, r io.Reader) (*storage.UploadedImage, error) {
	f.uploads++
	io.Copy(io.Discard, r)
	return &storage.UploadedImage{
		URL:          "http://blob/" + dir + "/" + filename,
		ThumbnailURL: "http://blob/" + dir + "/thumb_" + filename,
		Size:         123,
	}, nil
}

func (f *fakeBlob) UploadFile(ctx context.Context, dir, filename string, r io.Reader) (string, error) {
	return "http://blob/" + dir + "/" + filename, nil
}

func (f *fakeBlob) DeleteByPublicURL(ctx context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

func (f *fakeBlob) Download(ctx context.Context, url string) ([]byte, string, error) {
	return nil, "", storage.ErrNotFound
}

func newTestService(t *testing.T) (*PhotoService, *fakeBlob) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.ActivityPhotoModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Exec(`CREATE TABLE activities (activity_id INTEGER PRIMARY KEY AUTOINCREMENT, activity_name TEXT)`).Error; err != nil {
		t.Fatalf("create activities: %v", err)
	}
	db.Exec(`INSERT INTO activities (activity_name) VALUES ('Excursión')`)
	blob := &fakeBlob{}
	return NewPhotoService(db, blob), blob
}

func TestUploadStoresRowWithThumbnail(t *testing.T) {
	svc, blob := newTestService(t)

	row, err := svc.Upload(context.Background(), 1, "grupo.jpg", strings.NewReader("img"), nil)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if blob.uploads != 1 {
		t.Fatalf("uploads = %d, want 1", blob.uploads)
	}
	if row.ActivityPhotoThumbURL == nil || !strings.Contains(*row.ActivityPhotoThumbURL, "thumb_") {
		t.Fatalf("thumb url = %v", row.ActivityPhotoThumbURL)
	}
	if row.ActivityPhotoSizeBytes != 123 {
		t.Fatalf("size = %d, want 123", row.ActivityPhotoSizeBytes)
	}

	rows, err := svc.ListByActivity(1)
	if err != nil || len(rows) != 1 {
		t.Fatalf("ListByActivity: rows=%d err=%v", len(rows), err)
	}
}

func TestUploadRejectsUnknownActivity(t *testing.T) {
	svc, blob := newTestService(t)

	_, err := svc.Upload(context.Background(), 999, "x.jpg", strings.NewReader("img"), nil)
	if !errors.Is(err, ErrActivityNotFound) {
		t.Fatalf("err = %v, want ErrActivityNotFound", err)
	}
	if blob.uploads != 0 {
		t.Fatal("must not upload for unknown activity")
	}
}

func TestDeleteRemovesRowAndFiles(t *testing.T) {
	svc, blob := newTestService(t)

	row, err := svc.Upload(context.Background(), 1, "grupo.jpg", strings.NewReader("img"), nil)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.Delete(context.Background(), row.ActivityPhotoID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(blob.deleted) != 2 {
		t.Fatalf("deleted = %v, want url + thumbnail", blob.deleted)
	}

	var count int64
	svc.DB.Table("activity_photos").Count(&count)
	if count != 0 {
		t.Fatalf("rows = %d, want 0", count)
	}

	if err := svc.Delete(context.Background(), row.ActivityPhotoID); !errors.Is(err, ErrPhotoNotFound) {
		t.Fatalf("second delete err = %v, want ErrPhotoNotFound", err)
	}
}
