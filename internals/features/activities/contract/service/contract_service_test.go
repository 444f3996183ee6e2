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

	"acex_backend/internals/features/activities/contract/dto"
	"acex_backend/internals/features/activities/contract/model"
	"acex_backend/internals/helpers/storage"
)

type fakeBlob struct {
	files   map[string][]byte
	deleted []string
}

func newFakeBlob() *fakeBlob {
	return &fakeBlob{files: map[string][]byte{}}
}

func (f *fakeBlob) UploadImage(ctx context.Context, dir, filename string, r io.Reader) (*storage.UploadedImage, error) {
	url, _ := f.UploadFile(ctx, dir, filename, r)
	return &storage.UploadedImage{URL: url}, nil
}

func (f *fakeBlob) UploadFile(ctx context.Context, dir, filename string, r io.Reader) (string, error) {
	data, _ := io.ReadAll(r)
	url := "http://blob/" + dir + "/" + filename
	f.files[url] = data
	return url, nil
}

func (f *fakeBlob) DeleteByPublicURL(ctx context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	delete(f.files, url)
	return nil
}

func (f *fakeBlob) Download(ctx context.Context, url string) ([]byte, string, error) {
	data, ok := f.files[url]
	if !ok {
		return nil, "", storage.ErrNotFound
	}
	return data, "application/pdf", nil
}

func newTestService(t *testing.T) (*ContractService, *fakeBlob) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.ContractModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Exec(`CREATE TABLE activities (activity_id INTEGER PRIMARY KEY AUTOINCREMENT, activity_name TEXT)`).Error; err != nil {
		t.Fatalf("create activities: %v", err)
	}
	db.Exec(`INSERT INTO activities (activity_name) VALUES ('Viaje fin de curso')`)
	blob := newFakeBlob()
	return NewContractService(db, blob), blob
}

func TestCreateRequiresExistingActivity(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Create(999, &dto.CreateContractRequest{ContractSupplierName: "Autocares Sur"}); !errors.Is(err, ErrActivityNotFound) {
		t.Fatalf("err = %v, want ErrActivityNotFound", err)
	}

	row, err := svc.Create(1, &dto.CreateContractRequest{ContractSupplierName: "  Autocares Sur  "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if row.ContractSupplierName != "Autocares Sur" {
		t.Fatalf("supplier = %q, want trimmed", row.ContractSupplierName)
	}
}

func TestUploadDocumentReplacesOldFile(t *testing.T) {
	svc, blob := newTestService(t)
	row, _ := svc.Create(1, &dto.CreateContractRequest{ContractSupplierName: "Hotel Andaluz"})

	url1, err := svc.UploadDocument(context.Background(), row.ContractID, DocumentBudget, "presupuesto_v1.pdf", strings.NewReader("v1"))
	if err != nil {
		t.Fatalf("upload v1: %v", err)
	}
	url2, err := svc.UploadDocument(context.Background(), row.ContractID, DocumentBudget, "presupuesto_v2.pdf", strings.NewReader("v2"))
	if err != nil {
		t.Fatalf("upload v2: %v", err)
	}

	if len(blob.deleted) != 1 || blob.deleted[0] != url1 {
		t.Fatalf("deleted = %v, want old budget doc", blob.deleted)
	}

	got, _ := svc.GetByID(row.ContractID)
	if got.ContractBudgetDocumentURL == nil || *got.ContractBudgetDocumentURL != url2 {
		t.Fatalf("budget url = %v, want %s", got.ContractBudgetDocumentURL, url2)
	}
	// kolom invoice tidak ikut berubah
	if got.ContractInvoiceURL != nil {
		t.Fatalf("invoice url = %v, want nil", got.ContractInvoiceURL)
	}
}

func TestDownloadDocument(t *testing.T) {
	svc, _ := newTestService(t)
	row, _ := svc.Create(1, &dto.CreateContractRequest{ContractSupplierName: "Catering Luna"})

	if _, _, err := svc.DownloadDocument(context.Background(), row.ContractID, DocumentInvoice); !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("err = %v, want ErrDocumentNotFound", err)
	}

	if _, err := svc.UploadDocument(context.Background(), row.ContractID, DocumentInvoice, "factura.pdf", strings.NewReader("FACTURA")); err != nil {
		t.Fatalf("upload: %v", err)
	}

	data, contentType, err := svc.DownloadDocument(context.Background(), row.ContractID, DocumentInvoice)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if string(data) != "FACTURA" || contentType != "application/pdf" {
		t.Fatalf("data=%q type=%q", data, contentType)
	}
}

func TestDeleteRemovesDocuments(t *testing.T) {
	svc, blob := newTestService(t)
	row, _ := svc.Create(1, &dto.CreateContractRequest{ContractSupplierName: "Imprenta Real"})
	svc.UploadDocument(context.Background(), row.ContractID, DocumentBudget, "presupuesto.pdf", strings.NewReader("p"))
	svc.UploadDocument(context.Background(), row.ContractID, DocumentInvoice, "factura.pdf", strings.NewReader("f"))

	if err := svc.Delete(context.Background(), row.ContractID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(blob.files) != 0 {
		t.Fatalf("files left in storage: %v", blob.files)
	}

	if _, err := svc.GetByID(row.ContractID); !errors.Is(err, ErrContractNotFound) {
		t.Fatalf("err = %v, want ErrContractNotFound", err)
	}
}
