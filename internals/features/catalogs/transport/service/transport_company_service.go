// internals/features/catalogs/transport/service/transport_company_service.go
package service

import (
	"errors"

	"gorm.io/gorm"

	"acex_backend/internals/features/catalogs/transport/model"
)

var ErrTransportCompanyNotFound = errors.New("transport company not found")

type DeleteOutcome string

const (
	OutcomeDeleted     DeleteOutcome = "deleted"
	OutcomeDeactivated DeleteOutcome = "deactivated"
)

type TransportCompanyService struct {
	DB *gorm.DB
}

func NewTransportCompanyService(db *gorm.DB) *TransportCompanyService {
	return &TransportCompanyService{DB: db}
}

// Delete: sama seperti penginapan — masih dirujuk aktivitas → nonaktifkan saja.
func (s *TransportCompanyService) Delete(id int) (DeleteOutcome, error) {
	var company model.TransportCompanyModel
	if err := s.DB.First(&company, "transport_company_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrTransportCompanyNotFound
		}
		return "", err
	}

	var refs int64
	if err := s.DB.Table("activities").
		Where("activity_transport_company_id = ?", id).Count(&refs).Error; err != nil {
		return "", err
	}

	if refs > 0 {
		if err := s.DB.Model(&model.TransportCompanyModel{}).
			Where("transport_company_id = ?", id).
			Update("transport_company_is_active", false).Error; err != nil {
			return "", err
		}
		return OutcomeDeactivated, nil
	}

	if err := s.DB.Delete(&model.TransportCompanyModel{}, "transport_company_id = ?", id).Error; err != nil {
		return "", err
	}
	return OutcomeDeleted, nil
}
