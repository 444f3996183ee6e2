// internals/features/activities/contract/service/contract_service.go
package service

import (
	"context"
	"errors"
	"io"
	"log"
	"strconv"

	"gorm.io/gorm"

	"acex_backend/internals/features/activities/contract/dto"
	"acex_backend/internals/features/activities/contract/model"
	"acex_backend/internals/helpers/storage"
)

var (
	ErrContractNotFound = errors.New("kontrak tidak ditemukan")
	ErrActivityNotFound = errors.New("aktivitas tidak ditemukan")
	ErrDocumentNotFound = errors.New("dokumen tidak ditemukan")
)

// DocumentKind memilih kolom dokumen pada kontrak.
type DocumentKind string

const (
	DocumentBudget  DocumentKind = "budget"
	DocumentInvoice DocumentKind = "invoice"
)

type ContractService struct {
	DB   *gorm.DB
	Blob storage.BlobService
}

func NewContractService(db *gorm.DB, blob storage.BlobService) *ContractService {
	return &ContractService{DB: db, Blob: blob}
}

func (s *ContractService) ListByActivity(activityID int) ([]model.ContractModel, error) {
	var rows []model.ContractModel
	err := s.DB.
		Where("contract_activity_id = ?", activityID).
		Order("contract_created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (s *ContractService) GetByID(id int) (*model.ContractModel, error) {
	var row model.ContractModel
	if err := s.DB.First(&row, "contract_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (s *ContractService) Create(activityID int, req *dto.CreateContractRequest) (*model.ContractModel, error) {
	var count int64
	if err := s.DB.Table("activities").
		Where("activity_id = ?", activityID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrActivityNotFound
	}

	m := req.ToModel(activityID)
	if err := s.DB.Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ContractService) Update(id int, req *dto.UpdateContractRequest) (*model.ContractModel, error) {
	row, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(row)
	if err := s.DB.Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Delete menghapus kontrak dan dokumen tertautnya (best effort).
func (s *ContractService) Delete(ctx context.Context, id int) error {
	row, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.DB.Delete(&model.ContractModel{}, "contract_id = ?", id).Error; err != nil {
		return err
	}

	if s.Blob != nil {
		for _, u := range []*string{row.ContractBudgetDocumentURL, row.ContractInvoiceURL} {
			if u == nil || *u == "" {
				continue
			}
			if delErr := s.Blob.DeleteByPublicURL(ctx, *u); delErr != nil {
				log.Printf("[WARN] gagal hapus dokumen kontrak %d: %v", id, delErr)
			}
		}
	}
	return nil
}

// UploadDocument menyimpan dokumen (budget/invoice) dan menghapus versi lama.
func (s *ContractService) UploadDocument(ctx context.Context, id int, kind DocumentKind, filename string, r io.Reader) (string, error) {
	row, err := s.GetByID(id)
	if err != nil {
		return "", err
	}

	dir := "contracts/" + strconv.Itoa(row.ContractActivityID)
	url, err := s.Blob.UploadFile(ctx, dir, filename, r)
	if err != nil {
		return "", err
	}

	var old *string
	var column string
	switch kind {
	case DocumentInvoice:
		old = row.ContractInvoiceURL
		column = "contract_invoice_url"
	default:
		old = row.ContractBudgetDocumentURL
		column = "contract_budget_document_url"
	}

	if err := s.DB.Model(&model.ContractModel{}).
		Where("contract_id = ?", id).
		Update(column, url).Error; err != nil {
		return "", err
	}

	if old != nil && *old != "" && *old != url {
		if delErr := s.Blob.DeleteByPublicURL(ctx, *old); delErr != nil {
			log.Printf("[WARN] gagal hapus dokumen lama kontrak %d: %v", id, delErr)
		}
	}
	return url, nil
}

// DownloadDocument mengambil isi dokumen dari storage untuk diteruskan ke client.
func (s *ContractService) DownloadDocument(ctx context.Context, id int, kind DocumentKind) ([]byte, string, error) {
	row, err := s.GetByID(id)
	if err != nil {
		return nil, "", err
	}

	var url *string
	switch kind {
	case DocumentInvoice:
		url = row.ContractInvoiceURL
	default:
		url = row.ContractBudgetDocumentURL
	}
	if url == nil || *url == "" {
		return nil, "", ErrDocumentNotFound
	}

	data, contentType, err := s.Blob.Download(ctx, *url)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrDocumentNotFound
		}
		return nil, "", err
	}
	return data, contentType, nil
}
