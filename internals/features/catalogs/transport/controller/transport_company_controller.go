// internals/features/catalogs/transport/controller/transport_company_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/features/catalogs/transport/dto"
	"acex_backend/internals/features/catalogs/transport/model"
	"acex_backend/internals/features/catalogs/transport/service"
	helper "acex_backend/internals/helpers"
)

var validate = validator.New()

type TransportCompanyController struct {
	DB      *gorm.DB
	Service *service.TransportCompanyService
}

func NewTransportCompanyController(db *gorm.DB) *TransportCompanyController {
	return &TransportCompanyController{DB: db, Service: service.NewTransportCompanyService(db)}
}

// GET /api/transport-companies
func (ctrl *TransportCompanyController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	search := strings.TrimSpace(c.Query("search"))
	onlyActive := c.QueryBool("active", false)

	tx := ctrl.DB.Model(&model.TransportCompanyModel{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(transport_company_name) LIKE ?", like)
	}
	if onlyActive {
		tx = tx.Where("transport_company_is_active = ?", true)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data perusahaan transportasi")
	}

	var companies []model.TransportCompanyModel
	if err := tx.Order("transport_company_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&companies).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data perusahaan transportasi")
	}

	return helper.JsonList(c, "Daftar perusahaan transportasi berhasil diambil", companies, helper.BuildPagination(total, p))
}

// GET /api/transport-companies/:id
func (ctrl *TransportCompanyController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var company model.TransportCompanyModel
	if err := ctrl.DB.First(&company, "transport_company_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Perusahaan transportasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data perusahaan transportasi")
	}

	return helper.JsonOK(c, "Perusahaan transportasi ditemukan", company)
}

// POST /api/transport-companies
func (ctrl *TransportCompanyController) Create(c *fiber.Ctx) error {
	var req dto.CreateTransportCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	company := req.ToModel()
	if err := ctrl.DB.Create(company).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat perusahaan transportasi")
	}

	return helper.JsonCreated(c, "Perusahaan transportasi berhasil dibuat", company)
}

// PUT /api/transport-companies/:id
func (ctrl *TransportCompanyController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var company model.TransportCompanyModel
	if err := ctrl.DB.First(&company, "transport_company_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Perusahaan transportasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data perusahaan transportasi")
	}

	var req dto.UpdateTransportCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if v, ok := req.TransportCompanyName.Get(); ok && strings.TrimSpace(v) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama perusahaan tidak boleh kosong")
	}

	req.ApplyTo(&company)
	if err := ctrl.DB.Save(&company).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui perusahaan transportasi")
	}

	return helper.JsonUpdated(c, "Perusahaan transportasi berhasil diperbarui", company)
}

// DELETE /api/transport-companies/:id
func (ctrl *TransportCompanyController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	outcome, err := ctrl.Service.Delete(id)
	if err != nil {
		if errors.Is(err, service.ErrTransportCompanyNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Perusahaan transportasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus perusahaan transportasi")
	}

	if outcome == service.OutcomeDeactivated {
		return helper.JsonOK(c, "Perusahaan masih dipakai aktivitas, dinonaktifkan", fiber.Map{
			"transport_company_id": id,
			"outcome":              outcome,
		})
	}
	return helper.JsonDeleted(c, "Perusahaan transportasi berhasil dihapus", fiber.Map{
		"transport_company_id": id,
		"outcome":              outcome,
	})
}
