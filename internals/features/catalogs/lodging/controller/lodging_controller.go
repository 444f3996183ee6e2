// internals/features/catalogs/lodging/controller/lodging_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/features/catalogs/lodging/dto"
	"acex_backend/internals/features/catalogs/lodging/model"
	"acex_backend/internals/features/catalogs/lodging/service"
	helper "acex_backend/internals/helpers"
)

var validate = validator.New()

type LodgingController struct {
	DB      *gorm.DB
	Service *service.LodgingService
}

func NewLodgingController(db *gorm.DB) *LodgingController {
	return &LodgingController{DB: db, Service: service.NewLodgingService(db)}
}

// GET /api/lodgings
func (ctrl *LodgingController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	search := strings.TrimSpace(c.Query("search"))
	city := strings.TrimSpace(c.Query("city"))
	onlyActive := c.QueryBool("active", false)

	tx := ctrl.DB.Model(&model.LodgingModel{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(lodging_name) LIKE ?", like)
	}
	if city != "" {
		tx = tx.Where("LOWER(lodging_city) = ?", strings.ToLower(city))
	}
	if onlyActive {
		tx = tx.Where("lodging_is_active = ?", true)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data penginapan")
	}

	var lodgings []model.LodgingModel
	if err := tx.Order("lodging_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&lodgings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data penginapan")
	}

	return helper.JsonList(c, "Daftar penginapan berhasil diambil", lodgings, helper.BuildPagination(total, p))
}

// GET /api/lodgings/cities
func (ctrl *LodgingController) GetCities(c *fiber.Ctx) error {
	cities, err := ctrl.Service.Cities()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kota")
	}
	return helper.JsonOK(c, "Daftar kota berhasil diambil", cities)
}

// GET /api/lodgings/:id
func (ctrl *LodgingController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var lodging model.LodgingModel
	if err := ctrl.DB.First(&lodging, "lodging_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Penginapan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data penginapan")
	}

	return helper.JsonOK(c, "Penginapan ditemukan", lodging)
}

// POST /api/lodgings
func (ctrl *LodgingController) Create(c *fiber.Ctx) error {
	var req dto.CreateLodgingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	lodging := req.ToModel()
	if err := ctrl.DB.Create(lodging).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat penginapan")
	}

	return helper.JsonCreated(c, "Penginapan berhasil dibuat", lodging)
}

// PUT /api/lodgings/:id
func (ctrl *LodgingController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var lodging model.LodgingModel
	if err := ctrl.DB.First(&lodging, "lodging_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Penginapan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data penginapan")
	}

	var req dto.UpdateLodgingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if v, ok := req.LodgingName.Get(); ok && strings.TrimSpace(v) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama penginapan tidak boleh kosong")
	}

	req.ApplyTo(&lodging)
	if err := ctrl.DB.Save(&lodging).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui penginapan")
	}

	return helper.JsonUpdated(c, "Penginapan berhasil diperbarui", lodging)
}

// DELETE /api/lodgings/:id
// Masih dirujuk aktivitas → dinonaktifkan, tidak dihapus.
func (ctrl *LodgingController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	outcome, err := ctrl.Service.Delete(id)
	if err != nil {
		if errors.Is(err, service.ErrLodgingNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Penginapan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus penginapan")
	}

	if outcome == service.OutcomeDeactivated {
		return helper.JsonOK(c, "Penginapan masih dipakai aktivitas, dinonaktifkan", fiber.Map{
			"lodging_id": id,
			"outcome":    outcome,
		})
	}
	return helper.JsonDeleted(c, "Penginapan berhasil dihapus", fiber.Map{
		"lodging_id": id,
		"outcome":    outcome,
	})
}
