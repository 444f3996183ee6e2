// internals/features/catalogs/lodging/service/lodging_service.go
package service

import (
	"errors"

	"gorm.io/gorm"

	"acex_backend/internals/features/catalogs/lodging/model"
)

var ErrLodgingNotFound = errors.New("lodging not found")

// DeleteOutcome hasil dari Delete: dihapus permanen atau hanya dinonaktifkan.
type DeleteOutcome string

const (
	OutcomeDeleted     DeleteOutcome = "deleted"
	OutcomeDeactivated DeleteOutcome = "deactivated"
)

type LodgingService struct {
	DB *gorm.DB
}

func NewLodgingService(db *gorm.DB) *LodgingService {
	return &LodgingService{DB: db}
}

// Delete: kalau masih dirujuk aktivitas → soft delete (is_active=false),
// kalau tidak → hard delete. Cabang bisnis eksplisit, bukan efek samping FK.
func (s *LodgingService) Delete(id int) (DeleteOutcome, error) {
	var lodging model.LodgingModel
	if err := s.DB.First(&lodging, "lodging_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrLodgingNotFound
		}
		return "", err
	}

	var refs int64
	if err := s.DB.Table("activities").
		Where("activity_lodging_id = ?", id).Count(&refs).Error; err != nil {
		return "", err
	}

	if refs > 0 {
		if err := s.DB.Model(&model.LodgingModel{}).
			Where("lodging_id = ?", id).
			Update("lodging_is_active", false).Error; err != nil {
			return "", err
		}
		return OutcomeDeactivated, nil
	}

	if err := s.DB.Delete(&model.LodgingModel{}, "lodging_id = ?", id).Error; err != nil {
		return "", err
	}
	return OutcomeDeleted, nil
}

// Cities: daftar kota unik dari lodging aktif (dropdown filter di frontend)
func (s *LodgingService) Cities() ([]string, error) {
	var cities []string
	err := s.DB.Model(&model.LodgingModel{}).
		Where("lodging_city IS NOT NULL AND lodging_city <> ''").
		Where("lodging_is_active = ?", true).
		Distinct("lodging_city").
		Order("lodging_city ASC").
		Pluck("lodging_city", &cities).Error
	return cities, err
}
