// internals/features/activities/contract/controller/contract_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/features/activities/contract/dto"
	"acex_backend/internals/features/activities/contract/service"
	helper "acex_backend/internals/helpers"
	"acex_backend/internals/helpers/storage"
)

var validate = validator.New()

type ContractController struct {
	DB      *gorm.DB
	Service *service.ContractService
}

func NewContractController(db *gorm.DB, blob storage.BlobService) *ContractController {
	return &ContractController{DB: db, Service: service.NewContractService(db, blob)}
}

// GET /api/activities/:id/contracts
func (ctrl *ContractController) GetByActivity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	rows, err := ctrl.Service.ListByActivity(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kontrak")
	}
	return helper.JsonOK(c, "Kontrak berhasil diambil", rows)
}

// GET /api/contracts/:contractId
func (ctrl *ContractController) GetByID(c *fiber.Ctx) error {
	contractID, err := c.ParamsInt("contractId")
	if err != nil || contractID < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kontrak tidak valid")
	}
	row, err := ctrl.Service.GetByID(contractID)
	if err != nil {
		if errors.Is(err, service.ErrContractNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kontrak tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kontrak")
	}
	return helper.JsonOK(c, "Detail kontrak berhasil diambil", row)
}

// POST /api/activities/:id/contracts
func (ctrl *ContractController) Create(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.CreateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	row, err := ctrl.Service.Create(id, &req)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aktivitas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kontrak")
	}
	return helper.JsonCreated(c, "Kontrak berhasil dibuat", row)
}

// PUT /api/contracts/:contractId
func (ctrl *ContractController) Update(c *fiber.Ctx) error {
	contractID, err := c.ParamsInt("contractId")
	if err != nil || contractID < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kontrak tidak valid")
	}
	var req dto.UpdateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if name, ok := req.ContractSupplierName.Get(); ok && strings.TrimSpace(name) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama supplier tidak boleh kosong")
	}

	row, err := ctrl.Service.Update(contractID, &req)
	if err != nil {
		if errors.Is(err, service.ErrContractNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kontrak tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kontrak")
	}
	return helper.JsonUpdated(c, "Kontrak berhasil diperbarui", row)
}

// DELETE /api/contracts/:contractId
func (ctrl *ContractController) Delete(c *fiber.Ctx) error {
	contractID, err := c.ParamsInt("contractId")
	if err != nil || contractID < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kontrak tidak valid")
	}
	if err := ctrl.Service.Delete(c.Context(), contractID); err != nil {
		if errors.Is(err, service.ErrContractNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kontrak tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kontrak")
	}
	return helper.JsonDeleted(c, "Kontrak berhasil dihapus", fiber.Map{"contract_id": contractID})
}

// PUT /api/contracts/:contractId/documents/:kind  (kind: budget|invoice)
func (ctrl *ContractController) UploadDocument(c *fiber.Ctx) error {
	contractID, err := c.ParamsInt("contractId")
	if err != nil || contractID < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kontrak tidak valid")
	}
	kind, err := parseDocumentKind(c.Params("kind"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	fh, err := c.FormFile("document")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File dokumen wajib diunggah (field: document)")
	}
	if fh.Size > storage.MaxUploadSize {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ukuran dokumen melebihi batas")
	}
	src, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File dokumen tidak bisa dibaca")
	}
	defer src.Close()

	url, err := ctrl.Service.UploadDocument(c.Context(), contractID, kind, fh.Filename, src)
	if err != nil {
		if errors.Is(err, service.ErrContractNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kontrak tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengunggah dokumen")
	}
	return helper.JsonUpdated(c, "Dokumen berhasil diunggah", fiber.Map{"url": url})
}

// GET /api/contracts/:contractId/documents/:kind
func (ctrl *ContractController) DownloadDocument(c *fiber.Ctx) error {
	contractID, err := c.ParamsInt("contractId")
	if err != nil || contractID < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kontrak tidak valid")
	}
	kind, err := parseDocumentKind(c.Params("kind"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	data, contentType, err := ctrl.Service.DownloadDocument(c.Context(), contractID, kind)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContractNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Kontrak tidak ditemukan")
		case errors.Is(err, service.ErrDocumentNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Dokumen tidak ditemukan")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengunduh dokumen")
		}
	}

	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(data)
}

func parseDocumentKind(raw string) (service.DocumentKind, error) {
	switch strings.ToLower(raw) {
	case "budget":
		return service.DocumentBudget, nil
	case "invoice":
		return service.DocumentInvoice, nil
	default:
		return "", errors.New("jenis dokumen harus budget atau invoice")
	}
}
