// internals/features/teachers/teacher/controller/teacher_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"acex_backend/internals/features/teachers/teacher/dto"
	"acex_backend/internals/features/teachers/teacher/model"
	"acex_backend/internals/features/teachers/teacher/service"
	helper "acex_backend/internals/helpers"
	"acex_backend/internals/helpers/storage"
)

var validate = validator.New()

type TeacherController struct {
	DB      *gorm.DB
	Blob    storage.BlobService
	Service *service.TeacherService
}

func NewTeacherController(db *gorm.DB, blob storage.BlobService) *TeacherController {
	return &TeacherController{
		DB:      db,
		Blob:    blob,
		Service: service.NewTeacherService(db, blob),
	}
}

// GET /api/teachers
func (ctrl *TeacherController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	search := strings.TrimSpace(c.Query("search"))
	departmentID := c.QueryInt("department_id", 0)
	onlyActive := c.QueryBool("active", false)

	tx := ctrl.DB.Model(&model.TeacherModel{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where(
			"LOWER(teacher_first_name) LIKE ? OR LOWER(teacher_last_name) LIKE ? OR LOWER(teacher_email) LIKE ? OR LOWER(teacher_national_id) LIKE ?",
			like, like, like, like,
		)
	}
	if departmentID > 0 {
		tx = tx.Where("teacher_department_id = ?", departmentID)
	}
	if onlyActive {
		tx = tx.Where("teacher_is_active = ?", true)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}

	var teachers []model.TeacherModel
	if err := tx.Order("teacher_last_name ASC, teacher_first_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}

	return helper.JsonList(c, "Daftar guru berhasil diambil", teachers, helper.BuildPagination(total, p))
}

// GET /api/teachers/:id
func (ctrl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var teacher model.TeacherModel
	if err := ctrl.DB.First(&teacher, "teacher_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}

	return helper.JsonOK(c, "Guru ditemukan", teacher)
}

// POST /api/teachers
func (ctrl *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	teacher := req.ToModel()
	if err := ctrl.DB.Create(teacher).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "DNI atau email guru sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat guru")
	}

	return helper.JsonCreated(c, "Guru berhasil dibuat", teacher)
}

// PUT /api/teachers/:id
func (ctrl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var teacher model.TeacherModel
	if err := ctrl.DB.First(&teacher, "teacher_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if v, ok := req.TeacherNationalID.Get(); ok && strings.TrimSpace(v) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "DNI tidak boleh kosong")
	}
	if v, ok := req.TeacherEmail.Get(); ok && strings.TrimSpace(v) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email tidak boleh kosong")
	}
	if v, ok := req.TeacherFirstName.Get(); ok && strings.TrimSpace(v) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama depan tidak boleh kosong")
	}
	if v, ok := req.TeacherLastName.Get(); ok && strings.TrimSpace(v) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama belakang tidak boleh kosong")
	}

	req.ApplyTo(&teacher)
	if err := ctrl.DB.Save(&teacher).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "DNI atau email guru sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui guru")
	}

	return helper.JsonUpdated(c, "Guru berhasil diperbarui", teacher)
}

// DELETE /api/teachers/:id
func (ctrl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := ctrl.Service.Delete(c.UserContext(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrTeacherNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		case errors.Is(err, service.ErrTeacherHasUser):
			return helper.JsonError(c, fiber.StatusConflict, "Guru masih terhubung akun user, lepaskan dulu")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus guru")
		}
	}

	return helper.JsonDeleted(c, "Guru berhasil dihapus", fiber.Map{"teacher_id": id})
}

// POST /api/teachers/:id/photo  (multipart, field "photo")
func (ctrl *TeacherController) UploadPhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var teacher model.TeacherModel
	if err := ctrl.DB.First(&teacher, "teacher_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File foto tidak ditemukan (field: photo)")
	}
	if fh.Size > storage.MaxUploadSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Ukuran foto melebihi batas")
	}

	src, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membuka file foto")
	}
	defer src.Close()

	uploaded, err := ctrl.Blob.UploadImage(c.UserContext(), "teachers/"+id.String(), fh.Filename, src)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedFormat) {
			return helper.JsonError(c, fiber.StatusUnsupportedMediaType, "Format gambar tidak didukung (pakai jpg/png/webp)")
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal upload foto")
	}

	// hapus foto lama best-effort setelah yang baru sukses
	oldURL, oldThumb := teacher.TeacherPhotoURL, teacher.TeacherPhotoThumb

	teacher.TeacherPhotoURL = &uploaded.URL
	teacher.TeacherPhotoThumb = &uploaded.ThumbnailURL
	if err := ctrl.DB.Save(&teacher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan URL foto")
	}

	if oldURL != nil && *oldURL != "" {
		_ = ctrl.Blob.DeleteByPublicURL(c.UserContext(), *oldURL)
	}
	if oldThumb != nil && *oldThumb != "" {
		_ = ctrl.Blob.DeleteByPublicURL(c.UserContext(), *oldThumb)
	}

	return helper.JsonUpdated(c, "Foto guru berhasil diupload", teacher)
}

// DELETE /api/teachers/:id/photo
func (ctrl *TeacherController) DeletePhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := ctrl.Service.RemovePhoto(c.UserContext(), id); err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus foto guru")
	}

	return helper.JsonDeleted(c, "Foto guru berhasil dihapus", fiber.Map{"teacher_id": id})
}
