// internals/features/activities/photo/controller/photo_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/features/activities/photo/model"
	"acex_backend/internals/features/activities/photo/service"
	helper "acex_backend/internals/helpers"
	"acex_backend/internals/helpers/storage"
)

type PhotoController struct {
	DB      *gorm.DB
	Service *service.PhotoService
}

func NewPhotoController(db *gorm.DB, blob storage.BlobService) *PhotoController {
	return &PhotoController{DB: db, Service: service.NewPhotoService(db, blob)}
}

// GET /api/activities/:id/photos
func (ctrl *PhotoController) GetByActivity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	rows, err := ctrl.Service.ListByActivity(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil foto aktivitas")
	}
	return helper.JsonOK(c, "Foto aktivitas berhasil diambil", rows)
}

// POST /api/activities/:id/photos
// Multipart, field "photos" boleh lebih dari satu file.
func (ctrl *PhotoController) Upload(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Form multipart tidak valid")
	}
	files := form.File["photos"]
	if len(files) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Minimal satu file foto wajib diunggah (field: photos)")
	}

	var description *string
	if desc := strings.TrimSpace(c.FormValue("description")); desc != "" {
		description = &desc
	}

	var saved []model.ActivityPhotoModel
	var failed []string
	for _, fh := range files {
		if fh.Size > storage.MaxUploadSize {
			failed = append(failed, fmt.Sprintf("%s: melebihi batas ukuran", fh.Filename))
			continue
		}
		src, openErr := fh.Open()
		if openErr != nil {
			failed = append(failed, fmt.Sprintf("%s: tidak bisa dibaca", fh.Filename))
			continue
		}
		row, upErr := ctrl.Service.Upload(c.Context(), id, fh.Filename, src, description)
		src.Close()
		if upErr != nil {
			if errors.Is(upErr, service.ErrActivityNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Aktivitas tidak ditemukan")
			}
			if errors.Is(upErr, storage.ErrUnsupportedFormat) {
				failed = append(failed, fmt.Sprintf("%s: format tidak didukung", fh.Filename))
				continue
			}
			failed = append(failed, fmt.Sprintf("%s: gagal diunggah", fh.Filename))
			continue
		}
		saved = append(saved, *row)
	}

	if len(saved) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada foto yang berhasil diunggah")
	}
	return helper.JsonCreated(c, "Foto berhasil diunggah", fiber.Map{
		"uploaded": saved,
		"failed":   failed,
	})
}

// DELETE /api/photos/:photoId
func (ctrl *PhotoController) Delete(c *fiber.Ctx) error {
	photoID, err := c.ParamsInt("photoId")
	if err != nil || photoID < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID foto tidak valid")
	}

	if err := ctrl.Service.Delete(c.Context(), photoID); err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Foto tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus foto")
	}
	return helper.JsonDeleted(c, "Foto berhasil dihapus", fiber.Map{"activity_photo_id": photoID})
}
