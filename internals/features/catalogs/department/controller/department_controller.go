// internals/features/catalogs/department/controller/department_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/features/catalogs/department/dto"
	"acex_backend/internals/features/catalogs/department/model"
	helper "acex_backend/internals/helpers"
)

var validate = validator.New()

type DepartmentController struct {
	DB *gorm.DB
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db}
}

// GET /api/departments
func (ctrl *DepartmentController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	search := strings.TrimSpace(c.Query("search"))

	tx := ctrl.DB.Model(&model.DepartmentModel{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(department_name) LIKE ?", like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data departemen")
	}

	var departments []model.DepartmentModel
	if err := tx.Order("department_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&departments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data departemen")
	}

	return helper.JsonList(c, "Daftar departemen berhasil diambil", departments, helper.BuildPagination(total, p))
}

// GET /api/departments/:id
func (ctrl *DepartmentController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var department model.DepartmentModel
	if err := ctrl.DB.First(&department, "department_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Departemen tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data departemen")
	}

	return helper.JsonOK(c, "Departemen ditemukan", department)
}

// POST /api/departments
func (ctrl *DepartmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	department := req.ToModel()
	if err := ctrl.DB.Create(department).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama departemen sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat departemen")
	}

	return helper.JsonCreated(c, "Departemen berhasil dibuat", department)
}

// PUT /api/departments/:id
func (ctrl *DepartmentController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var department model.DepartmentModel
	if err := ctrl.DB.First(&department, "department_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Departemen tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data departemen")
	}

	var req dto.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if v, ok := req.DepartmentName.Get(); ok && strings.TrimSpace(v) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama departemen tidak boleh kosong")
	}

	req.ApplyTo(&department)
	if err := ctrl.DB.Save(&department).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama departemen sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui departemen")
	}

	return helper.JsonUpdated(c, "Departemen berhasil diperbarui", department)
}

// DELETE /api/departments/:id
func (ctrl *DepartmentController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	// Tolak kalau masih direferensikan aktivitas atau guru
	var refs int64
	if err := ctrl.DB.Table("activities").Where("activity_department_id = ?", id).Count(&refs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa relasi departemen")
	}
	if refs == 0 {
		if err := ctrl.DB.Table("teachers").Where("teacher_department_id = ?", id).Count(&refs).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa relasi departemen")
		}
	}
	if refs > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Departemen masih dipakai dan tidak bisa dihapus")
	}

	res := ctrl.DB.Delete(&model.DepartmentModel{}, "department_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus departemen")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Departemen tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Departemen berhasil dihapus", fiber.Map{"department_id": id})
}
