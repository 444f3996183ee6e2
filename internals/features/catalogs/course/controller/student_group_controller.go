// internals/features/catalogs/course/controller/student_group_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/features/catalogs/course/dto"
	"acex_backend/internals/features/catalogs/course/model"
	helper "acex_backend/internals/helpers"
)

type StudentGroupController struct {
	DB *gorm.DB
}

func NewStudentGroupController(db *gorm.DB) *StudentGroupController {
	return &StudentGroupController{DB: db}
}

// GET /api/groups?course_id=
func (ctrl *StudentGroupController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	search := strings.TrimSpace(c.Query("search"))
	courseID := c.QueryInt("course_id", 0)

	tx := ctrl.DB.Model(&model.StudentGroupModel{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(group_name) LIKE ?", like)
	}
	if courseID > 0 {
		tx = tx.Where("group_course_id = ?", courseID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data grup")
	}

	var groups []model.StudentGroupModel
	if err := tx.Preload("Course").
		Order("group_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data grup")
	}

	return helper.JsonList(c, "Daftar grup berhasil diambil", groups, helper.BuildPagination(total, p))
}

// GET /api/groups/:id
func (ctrl *StudentGroupController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var group model.StudentGroupModel
	if err := ctrl.DB.Preload("Course").First(&group, "group_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Grup tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data grup")
	}

	return helper.JsonOK(c, "Grup ditemukan", group)
}

// POST /api/groups
func (ctrl *StudentGroupController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	// pastikan kursus induk ada
	var exists int64
	if err := ctrl.DB.Model(&model.CourseModel{}).
		Where("course_id = ?", req.GroupCourseID).Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kursus")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kursus induk tidak ditemukan")
	}

	group := req.ToModel()
	if err := ctrl.DB.Create(group).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat grup")
	}

	return helper.JsonCreated(c, "Grup berhasil dibuat", group)
}

// PUT /api/groups/:id
func (ctrl *StudentGroupController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var group model.StudentGroupModel
	if err := ctrl.DB.First(&group, "group_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Grup tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data grup")
	}

	var req dto.UpdateStudentGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if v, ok := req.GroupName.Get(); ok && strings.TrimSpace(v) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama grup tidak boleh kosong")
	}
	if v, ok := req.GroupStudentCount.Get(); ok && v < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jumlah siswa tidak boleh negatif")
	}
	if v, ok := req.GroupCourseID.Get(); ok {
		var exists int64
		if err := ctrl.DB.Model(&model.CourseModel{}).
			Where("course_id = ?", v).Count(&exists).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kursus")
		}
		if exists == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kursus induk tidak ditemukan")
		}
	}

	req.ApplyTo(&group)
	if err := ctrl.DB.Save(&group).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui grup")
	}

	return helper.JsonUpdated(c, "Grup berhasil diperbarui", group)
}

// DELETE /api/groups/:id
func (ctrl *StudentGroupController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var refs int64
	if err := ctrl.DB.Table("activity_participant_groups").
		Where("activity_participant_group_group_id = ?", id).Count(&refs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa relasi grup")
	}
	if refs > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Grup masih terdaftar di aktivitas dan tidak bisa dihapus")
	}

	res := ctrl.DB.Delete(&model.StudentGroupModel{}, "group_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus grup")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Grup tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Grup berhasil dihapus", fiber.Map{"group_id": id})
}
