// internals/features/activities/activity/controller/activity_controller.go
package controller

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/features/activities/activity/dto"
	"acex_backend/internals/features/activities/activity/service"
	helper "acex_backend/internals/helpers"
	"acex_backend/internals/helpers/storage"
)

var validate = validator.New()

type ActivityController struct {
	DB      *gorm.DB
	Service *service.ActivityService
	Blob    storage.BlobService
}

func NewActivityController(db *gorm.DB, blob storage.BlobService) *ActivityController {
	return &ActivityController{
		DB:      db,
		Service: service.NewActivityService(db, blob),
		Blob:    blob,
	}
}

// GET /api/activities
func (ctrl *ActivityController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	rows, total, err := ctrl.Service.List(service.ListParams{
		Page:    p.Page,
		PerPage: p.PerPage,
		Search:  c.Query("search"),
		Status:  strings.TrimSpace(c.Query("status")),
		SortBy:  c.Query("sort_by", "created_at"),
		SortDir: c.Query("sort_dir", "desc"),
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data aktivitas")
	}
	return helper.JsonList(c, "Daftar aktivitas berhasil diambil", rows, helper.BuildPagination(total, p))
}

// GET /api/activities/:id
func (ctrl *ActivityController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	detail, err := ctrl.Service.GetByID(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil detail aktivitas")
	}
	if detail == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Aktivitas tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail aktivitas berhasil diambil", detail)
}

// POST /api/activities
// Menerima JSON atau multipart form (dengan file brosur opsional).
func (ctrl *ActivityController) Create(c *fiber.Ctx) error {
	var req dto.CreateActivityRequest

	isMultipart := strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
	if isMultipart {
		if err := ctrl.parseCreateForm(c, &req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	} else if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	activity, err := ctrl.Service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownStatus), errors.Is(err, service.ErrUnknownType):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat aktivitas")
		}
	}

	// brosur opsional hanya lewat multipart
	if isMultipart {
		if fh, fhErr := c.FormFile("brochure"); fhErr == nil && fh != nil {
			if url, upErr := ctrl.uploadBrochureFile(c, activity.ActivityID, fh); upErr != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, upErr.Error())
			} else {
				activity.ActivityBrochureURL = &url
			}
		}
	}

	return helper.JsonCreated(c, "Aktivitas berhasil dibuat", activity)
}

// PUT /api/activities/:id
func (ctrl *ActivityController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if name, ok := req.ActivityName.Get(); ok && strings.TrimSpace(name) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama aktivitas tidak boleh kosong")
	}

	activity, err := ctrl.Service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Aktivitas tidak ditemukan")
		case errors.Is(err, service.ErrUnknownStatus), errors.Is(err, service.ErrUnknownType):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui aktivitas")
		}
	}
	return helper.JsonUpdated(c, "Aktivitas berhasil diperbarui", activity)
}

// DELETE /api/activities/:id
func (ctrl *ActivityController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := ctrl.Service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aktivitas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus aktivitas")
	}
	return helper.JsonDeleted(c, "Aktivitas berhasil dihapus", fiber.Map{"activity_id": id})
}

// ===== Participant teachers =====

// GET /api/activities/:id/teachers
func (ctrl *ActivityController) GetParticipantTeachers(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	rows, err := ctrl.Service.GetParticipantTeachers(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil peserta guru")
	}
	return helper.JsonOK(c, "Peserta guru berhasil diambil", rows)
}

// PUT /api/activities/:id/teachers
func (ctrl *ActivityController) ReplaceParticipantTeachers(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.ReplaceParticipantTeachersRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	saved, err := ctrl.Service.ReplaceParticipantTeachers(id, req.TeacherIDs)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aktivitas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan peserta guru")
	}
	return helper.JsonUpdated(c, "Peserta guru berhasil disimpan", fiber.Map{"saved": saved})
}

// ===== Participant groups =====

// GET /api/activities/:id/groups
func (ctrl *ActivityController) GetParticipantGroups(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	rows, err := ctrl.Service.GetParticipantGroups(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup peserta")
	}
	return helper.JsonOK(c, "Grup peserta berhasil diambil", rows)
}

// PUT /api/activities/:id/groups
func (ctrl *ActivityController) ReplaceParticipantGroups(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.ReplaceParticipantGroupsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	saved, err := ctrl.Service.ReplaceParticipantGroups(id, req.Groups)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aktivitas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan grup peserta")
	}
	return helper.JsonUpdated(c, "Grup peserta berhasil disimpan", fiber.Map{"saved": saved})
}

// ===== Locations =====

// GET /api/activities/:id/locations
func (ctrl *ActivityController) GetLocations(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	rows, err := ctrl.Service.GetLocations(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lokasi aktivitas")
	}
	return helper.JsonOK(c, "Lokasi aktivitas berhasil diambil", rows)
}

// POST /api/activities/:id/locations
func (ctrl *ActivityController) AddLocation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.AddActivityLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	ok, err := ctrl.Service.AddLocation(id, &req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambahkan lokasi")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Aktivitas/lokasi tidak ditemukan atau lokasi sudah terdaftar")
	}
	return helper.JsonCreated(c, "Lokasi berhasil ditambahkan", fiber.Map{
		"activity_id": id,
		"location_id": req.LocationID,
	})
}

// PUT /api/activities/:id/locations/:locationId
func (ctrl *ActivityController) UpdateLocation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	locationID, err := c.ParamsInt("locationId")
	if err != nil || locationID < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lokasi tidak valid")
	}
	var req dto.UpdateActivityLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	ok, err := ctrl.Service.UpdateLocation(id, locationID, &req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui lokasi")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Lokasi tidak terdaftar pada aktivitas ini")
	}
	return helper.JsonUpdated(c, "Lokasi aktivitas berhasil diperbarui", nil)
}

// DELETE /api/activities/:id/locations/:locationId
func (ctrl *ActivityController) RemoveLocation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	locationID, err := c.ParamsInt("locationId")
	if err != nil || locationID < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lokasi tidak valid")
	}

	ok, err := ctrl.Service.RemoveLocation(id, locationID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus lokasi")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Lokasi tidak terdaftar pada aktivitas ini")
	}
	return helper.JsonDeleted(c, "Lokasi berhasil dilepas dari aktivitas", nil)
}

// ===== Brochure =====

// PUT /api/activities/:id/brochure
func (ctrl *ActivityController) UploadBrochure(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	fh, err := c.FormFile("brochure")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File brosur wajib diunggah (field: brochure)")
	}

	url, err := ctrl.uploadBrochureFile(c, id, fh)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aktivitas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonUpdated(c, "Brosur berhasil diunggah", fiber.Map{"activity_brochure_url": url})
}

// DELETE /api/activities/:id/brochure
func (ctrl *ActivityController) DeleteBrochure(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.Service.DeleteBrochure(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aktivitas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus brosur")
	}
	return helper.JsonDeleted(c, "Brosur berhasil dihapus", nil)
}

// ===== internals =====

func (ctrl *ActivityController) uploadBrochureFile(c *fiber.Ctx, activityID int, fh *multipart.FileHeader) (string, error) {
	if fh.Size > storage.MaxUploadSize {
		return "", fmt.Errorf("ukuran file maksimal %d MB", storage.MaxUploadSize/(1024*1024))
	}
	src, err := fh.Open()
	if err != nil {
		return "", errors.New("file brosur tidak bisa dibaca")
	}
	defer src.Close()

	dir := fmt.Sprintf("activities/%d", activityID)
	url, err := ctrl.Blob.UploadFile(c.Context(), dir, fh.Filename, src)
	if err != nil {
		return "", errors.New("gagal mengunggah brosur")
	}
	if err := ctrl.Service.SetBrochure(c.Context(), activityID, url); err != nil {
		return "", err
	}
	return url, nil
}

func (ctrl *ActivityController) parseCreateForm(c *fiber.Ctx, req *dto.CreateActivityRequest) error {
	req.ActivityName = strings.TrimSpace(c.FormValue("activity_name"))
	if desc := strings.TrimSpace(c.FormValue("activity_description")); desc != "" {
		req.ActivityDescription = &desc
	}

	start, err := parseDate(c.FormValue("activity_start_date"))
	if err != nil {
		return errors.New("activity_start_date tidak valid")
	}
	req.ActivityStartDate = start

	if raw := strings.TrimSpace(c.FormValue("activity_end_date")); raw != "" {
		end, err := parseDate(raw)
		if err != nil {
			return errors.New("activity_end_date tidak valid")
		}
		req.ActivityEndDate = &end
	}

	// angka desimal menerima koma maupun titik
	for _, f := range []struct {
		key  string
		dest **float64
	}{
		{"activity_estimated_budget", &req.ActivityEstimatedBudget},
		{"activity_actual_cost", &req.ActivityActualCost},
		{"activity_transport_price", &req.ActivityTransportPrice},
		{"activity_lodging_price", &req.ActivityLodgingPrice},
	} {
		v, err := helper.ParseDecimalPtr(c.FormValue(f.key))
		if err != nil {
			return fmt.Errorf("%s tidak valid", f.key)
		}
		*f.dest = v
	}

	if v := strings.TrimSpace(c.FormValue("activity_status")); v != "" {
		req.ActivityStatus = &v
	}
	if v := strings.TrimSpace(c.FormValue("activity_type")); v != "" {
		req.ActivityType = &v
	}
	req.ActivityTransportRequired = c.FormValue("activity_transport_required") == "true"
	req.ActivityLodgingRequired = c.FormValue("activity_lodging_required") == "true"

	for _, f := range []struct {
		key  string
		dest **int
	}{
		{"activity_lodging_id", &req.ActivityLodgingID},
		{"activity_department_id", &req.ActivityDepartmentID},
		{"activity_location_id", &req.ActivityLocationID},
		{"activity_transport_company_id", &req.ActivityTransportCompanyID},
	} {
		raw := strings.TrimSpace(c.FormValue(f.key))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return fmt.Errorf("%s tidak valid", f.key)
		}
		*f.dest = &n
	}
	return nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
