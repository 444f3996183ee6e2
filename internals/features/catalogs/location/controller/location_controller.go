// internals/features/catalogs/location/controller/location_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/features/catalogs/location/dto"
	"acex_backend/internals/features/catalogs/location/model"
	helper "acex_backend/internals/helpers"
)

var validate = validator.New()

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db}
}

// GET /api/locations
func (ctrl *LocationController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	search := strings.TrimSpace(c.Query("search"))
	city := strings.TrimSpace(c.Query("city"))

	tx := ctrl.DB.Model(&model.LocationModel{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(location_name) LIKE ? OR LOWER(location_address) LIKE ?", like, like)
	}
	if city != "" {
		tx = tx.Where("LOWER(location_city) = ?", strings.ToLower(city))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lokasi")
	}

	var locations []model.LocationModel
	if err := tx.Order("location_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&locations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lokasi")
	}

	return helper.JsonList(c, "Daftar lokasi berhasil diambil", locations, helper.BuildPagination(total, p))
}

// GET /api/locations/:id
func (ctrl *LocationController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var location model.LocationModel
	if err := ctrl.DB.First(&location, "location_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Lokasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lokasi")
	}

	return helper.JsonOK(c, "Lokasi ditemukan", location)
}

// POST /api/locations
func (ctrl *LocationController) Create(c *fiber.Ctx) error {
	var req dto.CreateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	location := req.ToModel()
	if err := ctrl.DB.Create(location).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat lokasi")
	}

	return helper.JsonCreated(c, "Lokasi berhasil dibuat", location)
}

// PUT /api/locations/:id
func (ctrl *LocationController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var location model.LocationModel
	if err := ctrl.DB.First(&location, "location_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Lokasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lokasi")
	}

	var req dto.UpdateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if v, ok := req.LocationName.Get(); ok && strings.TrimSpace(v) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama lokasi tidak boleh kosong")
	}

	req.ApplyTo(&location)
	if err := ctrl.DB.Save(&location).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui lokasi")
	}

	return helper.JsonUpdated(c, "Lokasi berhasil diperbarui", location)
}

// DELETE /api/locations/:id
func (ctrl *LocationController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var refs int64
	if err := ctrl.DB.Table("activity_locations").
		Where("activity_location_location_id = ?", id).Count(&refs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa relasi lokasi")
	}
	if refs > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Lokasi masih dipakai aktivitas dan tidak bisa dihapus")
	}

	res := ctrl.DB.Delete(&model.LocationModel{}, "location_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus lokasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lokasi tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Lokasi berhasil dihapus", fiber.Map{"location_id": id})
}
