// internals/features/activities/activity/service/activity_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"acex_backend/internals/features/activities/activity/dto"
	"acex_backend/internals/features/activities/activity/model"
	"acex_backend/internals/helpers/storage"
)

var (
	ErrActivityNotFound = errors.New("aktivitas tidak ditemukan")
	ErrUnknownStatus    = errors.New("status aktivitas tidak dikenal")
	ErrUnknownType      = errors.New("tipe aktivitas tidak dikenal")
)

// kolom yang boleh dipakai untuk sort list
var sortColumns = map[string]string{
	"name":       "activity_name",
	"start_date": "activity_start_date",
	"created_at": "activity_created_at",
}

type ActivityService struct {
	DB   *gorm.DB
	Blob storage.BlobService
}

func NewActivityService(db *gorm.DB, blob storage.BlobService) *ActivityService {
	return &ActivityService{DB: db, Blob: blob}
}

type ListParams struct {
	Page    int
	PerPage int
	Search  string
	Status  string
	SortBy  string
	SortDir string
}

func (s *ActivityService) List(p ListParams) ([]model.ActivityModel, int64, error) {
	q := s.DB.Model(&model.ActivityModel{})

	if search := strings.TrimSpace(p.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(activity_name) LIKE ? OR LOWER(activity_description) LIKE ?", pattern, pattern)
	}
	if p.Status != "" {
		q = q.Where("activity_status = ?", p.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	col, ok := sortColumns[p.SortBy]
	if !ok {
		col = "activity_created_at"
	}
	dir := "DESC"
	if strings.EqualFold(p.SortDir, "asc") {
		dir = "ASC"
	}

	var rows []model.ActivityModel
	err := q.Order(col + " " + dir).
		Offset((p.Page - 1) * p.PerPage).
		Limit(p.PerPage).
		Find(&rows).Error
	return rows, total, err
}

// GetByID mengembalikan (nil, nil) jika aktivitas tidak ada.
func (s *ActivityService) GetByID(id int) (*dto.ActivityDetailResponse, error) {
	var activity model.ActivityModel
	if err := s.DB.First(&activity, "activity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	detail := &dto.ActivityDetailResponse{ActivityModel: activity}

	if activity.ActivityDepartmentID != nil {
		detail.DepartmentName = s.lookupName("departments", "department_name", "department_id", *activity.ActivityDepartmentID)
	}
	if activity.ActivityLocationID != nil {
		detail.PrimaryLocationName = s.lookupName("locations", "location_name", "location_id", *activity.ActivityLocationID)
	}
	if activity.ActivityLodgingID != nil {
		detail.LodgingName = s.lookupName("lodgings", "lodging_name", "lodging_id", *activity.ActivityLodgingID)
	}
	if activity.ActivityTransportCompanyID != nil {
		detail.TransportCompanyName = s.lookupName("transport_companies", "transport_company_name", "transport_company_id", *activity.ActivityTransportCompanyID)
	}

	locations, err := s.GetLocations(id)
	if err != nil {
		return nil, err
	}
	detail.Locations = locations

	if err := s.DB.
		Where("activity_responsible_teacher_activity_id = ?", id).
		Find(&detail.ResponsibleTeachers).Error; err != nil {
		return nil, err
	}

	return detail, nil
}

func (s *ActivityService) lookupName(table, nameCol, idCol string, id int) *string {
	var name string
	err := s.DB.Table(table).
		Select(nameCol).
		Where(idCol+" = ?", id).
		Scan(&name).Error
	if err != nil || name == "" {
		return nil
	}
	return &name
}

func (s *ActivityService) Create(req *dto.CreateActivityRequest) (*model.ActivityModel, error) {
	m := req.ToModel()
	if !model.IsKnownStatus(m.ActivityStatus) {
		return nil, ErrUnknownStatus
	}
	if !model.IsKnownType(m.ActivityType) {
		return nil, ErrUnknownType
	}
	if err := s.DB.Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ActivityService) Update(id int, req *dto.UpdateActivityRequest) (*model.ActivityModel, error) {
	var activity model.ActivityModel
	if err := s.DB.First(&activity, "activity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	req.ApplyTo(&activity)
	if !model.IsKnownStatus(activity.ActivityStatus) {
		return nil, ErrUnknownStatus
	}
	if !model.IsKnownType(activity.ActivityType) {
		return nil, ErrUnknownType
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&activity).Error; err != nil {
			return err
		}
		// penanggung jawab: set pengganti, selalu is_coordinator
		if req.ResponsibleTeacherID.Present {
			if err := tx.
				Where("activity_responsible_teacher_activity_id = ?", id).
				Delete(&model.ActivityResponsibleTeacherModel{}).Error; err != nil {
				return err
			}
			if raw, ok := req.ResponsibleTeacherID.Get(); ok {
				teacherID, parseErr := uuid.Parse(raw)
				if parseErr != nil {
					return fmt.Errorf("responsible_teacher_id tidak valid: %w", parseErr)
				}
				row := model.ActivityResponsibleTeacherModel{
					ActivityResponsibleTeacherActivityID:    id,
					ActivityResponsibleTeacherTeacherID:     teacherID,
					ActivityResponsibleTeacherIsCoordinator: true,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// Delete menghapus aktivitas beserta seluruh baris terkait dalam satu
// transaksi. File di storage (brosur, foto, dokumen kontrak) dihapus
// best effort setelah commit.
func (s *ActivityService) Delete(ctx context.Context, id int) error {
	var activity model.ActivityModel
	if err := s.DB.First(&activity, "activity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrActivityNotFound
		}
		return err
	}

	var fileURLs []string
	if activity.ActivityBrochureURL != nil && *activity.ActivityBrochureURL != "" {
		fileURLs = append(fileURLs, *activity.ActivityBrochureURL)
	}

	type urlPair struct {
		URL   *string
		Thumb *string
	}
	var photoURLs []urlPair
	s.DB.Table("activity_photos").
		Select("activity_photo_url AS url, activity_photo_thumb_url AS thumb").
		Where("activity_photo_activity_id = ?", id).
		Scan(&photoURLs)
	for _, p := range photoURLs {
		if p.URL != nil && *p.URL != "" {
			fileURLs = append(fileURLs, *p.URL)
		}
		if p.Thumb != nil && *p.Thumb != "" {
			fileURLs = append(fileURLs, *p.Thumb)
		}
	}

	var docURLs []urlPair
	s.DB.Table("activity_contracts").
		Select("contract_budget_document_url AS url, contract_invoice_url AS thumb").
		Where("contract_activity_id = ?", id).
		Scan(&docURLs)
	for _, d := range docURLs {
		if d.URL != nil && *d.URL != "" {
			fileURLs = append(fileURLs, *d.URL)
		}
		if d.Thumb != nil && *d.Thumb != "" {
			fileURLs = append(fileURLs, *d.Thumb)
		}
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []struct {
			table string
			col   string
		}{
			{"activity_locations", "activity_location_activity_id"},
			{"activity_participant_teachers", "activity_participant_teacher_activity_id"},
			{"activity_responsible_teachers", "activity_responsible_teacher_activity_id"},
			{"activity_participant_groups", "activity_participant_group_activity_id"},
			{"activity_photos", "activity_photo_activity_id"},
			{"activity_contracts", "contract_activity_id"},
			{"activity_expenses", "expense_activity_id"},
		} {
			if err := tx.Exec("DELETE FROM "+stmt.table+" WHERE "+stmt.col+" = ?", id).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.ActivityModel{}, "activity_id = ?", id).Error
	})
	if err != nil {
		return err
	}

	if s.Blob != nil {
		for _, u := range fileURLs {
			if delErr := s.Blob.DeleteByPublicURL(ctx, u); delErr != nil {
				log.Printf("[WARN] gagal hapus file aktivitas %d: %v", id, delErr)
			}
		}
	}
	return nil
}

// ===== Participant teachers =====

func (s *ActivityService) GetParticipantTeachers(activityID int) ([]model.ActivityParticipantTeacherModel, error) {
	var rows []model.ActivityParticipantTeacherModel
	err := s.DB.
		Where("activity_participant_teacher_activity_id = ?", activityID).
		Find(&rows).Error
	return rows, err
}

// ReplaceParticipantTeachers mengganti seluruh peserta guru dalam satu
// transaksi. UUID yang tidak bisa diparse dilewati; daftar kosong berarti
// mengosongkan peserta.
func (s *ActivityService) ReplaceParticipantTeachers(activityID int, teacherIDs []string) (int, error) {
	if exists, err := s.activityExists(activityID); err != nil {
		return 0, err
	} else if !exists {
		return 0, ErrActivityNotFound
	}

	var rows []model.ActivityParticipantTeacherModel
	for _, raw := range teacherIDs {
		teacherID, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		rows = append(rows, model.ActivityParticipantTeacherModel{
			ActivityParticipantTeacherActivityID: activityID,
			ActivityParticipantTeacherTeacherID:  teacherID,
		})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("activity_participant_teacher_activity_id = ?", activityID).
			Delete(&model.ActivityParticipantTeacherModel{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// ===== Participant groups =====

func (s *ActivityService) GetParticipantGroups(activityID int) ([]model.ActivityParticipantGroupModel, error) {
	var rows []model.ActivityParticipantGroupModel
	err := s.DB.
		Where("activity_participant_group_activity_id = ?", activityID).
		Find(&rows).Error
	return rows, err
}

func (s *ActivityService) ReplaceParticipantGroups(activityID int, groups []dto.GroupAssignment) (int, error) {
	if exists, err := s.activityExists(activityID); err != nil {
		return 0, err
	} else if !exists {
		return 0, ErrActivityNotFound
	}

	var rows []model.ActivityParticipantGroupModel
	for _, g := range groups {
		rows = append(rows, model.ActivityParticipantGroupModel{
			ActivityParticipantGroupActivityID:       activityID,
			ActivityParticipantGroupGroupID:          g.GroupID,
			ActivityParticipantGroupParticipantCount: g.ParticipantCount,
		})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("activity_participant_group_activity_id = ?", activityID).
			Delete(&model.ActivityParticipantGroupModel{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// ===== Locations =====

func (s *ActivityService) GetLocations(activityID int) ([]dto.ActivityLocationWithName, error) {
	var rows []dto.ActivityLocationWithName
	err := s.DB.Table("activity_locations").
		Select("activity_locations.*, locations.location_name, locations.location_icon").
		Joins("JOIN locations ON locations.location_id = activity_locations.activity_location_location_id").
		Where("activity_locations.activity_location_activity_id = ?", activityID).
		Order("activity_locations.activity_location_order ASC").
		Scan(&rows).Error
	return rows, err
}

// AddLocation menautkan lokasi ke aktivitas. Mengembalikan false jika
// aktivitas/lokasi tidak ada atau pasangannya sudah terdaftar.
// is_principal=true menurunkan principal lain dalam transaksi yang sama.
func (s *ActivityService) AddLocation(activityID int, req *dto.AddActivityLocationRequest) (bool, error) {
	if exists, err := s.activityExists(activityID); err != nil || !exists {
		return false, err
	}

	var locCount int64
	if err := s.DB.Table("locations").
		Where("location_id = ?", req.LocationID).
		Count(&locCount).Error; err != nil {
		return false, err
	}
	if locCount == 0 {
		return false, nil
	}

	var dup int64
	if err := s.DB.Model(&model.ActivityLocationModel{}).
		Where("activity_location_activity_id = ? AND activity_location_location_id = ?", activityID, req.LocationID).
		Count(&dup).Error; err != nil {
		return false, err
	}
	if dup > 0 {
		return false, nil
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsPrincipal {
			if err := tx.Model(&model.ActivityLocationModel{}).
				Where("activity_location_activity_id = ?", activityID).
				Update("activity_location_is_principal", false).Error; err != nil {
				return err
			}
		}
		row := model.ActivityLocationModel{
			ActivityLocationActivityID:  activityID,
			ActivityLocationLocationID:  req.LocationID,
			ActivityLocationIsPrincipal: req.IsPrincipal,
			ActivityLocationOrder:       req.Order,
			ActivityLocationDescription: req.Description,
			ActivityLocationType:        req.Type,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		// icon menimpa baris lokasi BERSAMA, bukan per aktivitas
		if req.Icon != nil && *req.Icon != "" {
			log.Printf("⚠️ Icon lokasi %d diubah lewat aktivitas %d; berlaku untuk semua aktivitas", req.LocationID, activityID)
			if err := tx.Table("locations").
				Where("location_id = ?", req.LocationID).
				Update("location_icon", *req.Icon).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *ActivityService) UpdateLocation(activityID, locationID int, req *dto.UpdateActivityLocationRequest) (bool, error) {
	var row model.ActivityLocationModel
	err := s.DB.
		Where("activity_location_activity_id = ? AND activity_location_location_id = ?", activityID, locationID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if v, ok := req.IsPrincipal.Get(); ok {
		row.ActivityLocationIsPrincipal = v
	}
	if v, ok := req.Order.Get(); ok {
		row.ActivityLocationOrder = v
	}
	if req.Description.Present {
		row.ActivityLocationDescription = req.Description.Ptr()
	}
	if req.Type.Present {
		row.ActivityLocationType = req.Type.Ptr()
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if row.ActivityLocationIsPrincipal {
			if err := tx.Model(&model.ActivityLocationModel{}).
				Where("activity_location_activity_id = ? AND activity_location_id <> ?", activityID, row.ActivityLocationID).
				Update("activity_location_is_principal", false).Error; err != nil {
				return err
			}
		}
		if err := tx.Save(&row).Error; err != nil {
			return err
		}
		if icon, ok := req.Icon.Get(); ok && icon != "" {
			log.Printf("⚠️ Icon lokasi %d diubah lewat aktivitas %d; berlaku untuk semua aktivitas", locationID, activityID)
			if err := tx.Table("locations").
				Where("location_id = ?", locationID).
				Update("location_icon", icon).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *ActivityService) RemoveLocation(activityID, locationID int) (bool, error) {
	res := s.DB.
		Where("activity_location_activity_id = ? AND activity_location_location_id = ?", activityID, locationID).
		Delete(&model.ActivityLocationModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ===== Brochure =====

// SetBrochure menyimpan URL brosur baru dan menghapus file lama setelahnya.
func (s *ActivityService) SetBrochure(ctx context.Context, id int, url string) error {
	var activity model.ActivityModel
	if err := s.DB.First(&activity, "activity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrActivityNotFound
		}
		return err
	}
	old := activity.ActivityBrochureURL

	if err := s.DB.Model(&activity).
		Update("activity_brochure_url", url).Error; err != nil {
		return err
	}
	if old != nil && *old != "" && *old != url && s.Blob != nil {
		if delErr := s.Blob.DeleteByPublicURL(ctx, *old); delErr != nil {
			log.Printf("[WARN] gagal hapus brosur lama aktivitas %d: %v", id, delErr)
		}
	}
	return nil
}

func (s *ActivityService) DeleteBrochure(ctx context.Context, id int) error {
	var activity model.ActivityModel
	if err := s.DB.First(&activity, "activity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrActivityNotFound
		}
		return err
	}
	old := activity.ActivityBrochureURL
	if err := s.DB.Model(&activity).
		Update("activity_brochure_url", nil).Error; err != nil {
		return err
	}
	if old != nil && *old != "" && s.Blob != nil {
		if delErr := s.Blob.DeleteByPublicURL(ctx, *old); delErr != nil {
			log.Printf("[WARN] gagal hapus brosur aktivitas %d: %v", id, delErr)
		}
	}
	return nil
}

func (s *ActivityService) activityExists(id int) (bool, error) {
	var count int64
	err := s.DB.Model(&model.ActivityModel{}).
		Where("activity_id = ?", id).
		Count(&count).Error
	return count > 0, err
}
