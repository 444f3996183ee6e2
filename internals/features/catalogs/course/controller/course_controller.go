// internals/features/catalogs/course/controller/course_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/features/catalogs/course/dto"
	"acex_backend/internals/features/catalogs/course/model"
	helper "acex_backend/internals/helpers"
)

var validate = validator.New()

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// GET /api/courses
func (ctrl *CourseController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	search := strings.TrimSpace(c.Query("search"))
	onlyActive := c.QueryBool("active", false)

	tx := ctrl.DB.Model(&model.CourseModel{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(course_name) LIKE ?", like)
	}
	if onlyActive {
		tx = tx.Where("course_is_active = ?", true)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kursus")
	}

	var courses []model.CourseModel
	if err := tx.Order("course_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kursus")
	}

	return helper.JsonList(c, "Daftar kursus berhasil diambil", courses, helper.BuildPagination(total, p))
}

// GET /api/courses/:id
func (ctrl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kursus")
	}

	return helper.JsonOK(c, "Kursus ditemukan", course)
}

// POST /api/courses
func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	course := req.ToModel()
	if err := ctrl.DB.Create(course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kursus")
	}

	return helper.JsonCreated(c, "Kursus berhasil dibuat", course)
}

// PUT /api/courses/:id
func (ctrl *CourseController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kursus")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if v, ok := req.CourseName.Get(); ok && strings.TrimSpace(v) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama kursus tidak boleh kosong")
	}

	req.ApplyTo(&course)
	if err := ctrl.DB.Save(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kursus")
	}

	return helper.JsonUpdated(c, "Kursus berhasil diperbarui", course)
}

// DELETE /api/courses/:id
func (ctrl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var refs int64
	if err := ctrl.DB.Model(&model.StudentGroupModel{}).
		Where("group_course_id = ?", id).Count(&refs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa relasi kursus")
	}
	if refs > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kursus masih memiliki grup dan tidak bisa dihapus")
	}

	res := ctrl.DB.Delete(&model.CourseModel{}, "course_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kursus")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Kursus berhasil dihapus", fiber.Map{"course_id": id})
}
