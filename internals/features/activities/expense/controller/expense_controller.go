// internals/features/activities/expense/controller/expense_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/features/activities/expense/dto"
	"acex_backend/internals/features/activities/expense/model"
	helper "acex_backend/internals/helpers"
)

var validate = validator.New()

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

// GET /api/activities/:id/expenses
func (ctrl *ExpenseController) GetByActivity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var rows []model.ExpenseModel
	if err := ctrl.DB.
		Where("expense_activity_id = ?", id).
		Order("expense_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengeluaran")
	}

	var total float64
	for _, r := range rows {
		total += r.ExpenseAmount
	}
	return helper.JsonOK(c, "Pengeluaran berhasil diambil", fiber.Map{
		"items": rows,
		"total": total,
	})
}

// POST /api/activities/:id/expenses
func (ctrl *ExpenseController) Create(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var count int64
	if err := ctrl.DB.Table("activities").
		Where("activity_id = ?", id).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa aktivitas")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Aktivitas tidak ditemukan")
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	row := req.ToModel(id)
	if err := ctrl.DB.Create(row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengeluaran")
	}
	return helper.JsonCreated(c, "Pengeluaran berhasil dibuat", row)
}

// PUT /api/expenses/:expenseId
func (ctrl *ExpenseController) Update(c *fiber.Ctx) error {
	expenseID, err := c.ParamsInt("expenseId")
	if err != nil || expenseID < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengeluaran tidak valid")
	}

	var row model.ExpenseModel
	if err := ctrl.DB.First(&row, "expense_id = ?", expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengeluaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengeluaran")
	}

	var req dto.UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if v, ok := req.ExpenseConcept.Get(); ok && strings.TrimSpace(v) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Konsep pengeluaran tidak boleh kosong")
	}
	if v, ok := req.ExpenseAmount.Get(); ok && v < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nominal pengeluaran tidak boleh negatif")
	}

	req.ApplyTo(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pengeluaran")
	}
	return helper.JsonUpdated(c, "Pengeluaran berhasil diperbarui", row)
}

// DELETE /api/expenses/:expenseId
func (ctrl *ExpenseController) Delete(c *fiber.Ctx) error {
	expenseID, err := c.ParamsInt("expenseId")
	if err != nil || expenseID < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengeluaran tidak valid")
	}

	res := ctrl.DB.Delete(&model.ExpenseModel{}, "expense_id = ?", expenseID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengeluaran")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengeluaran tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Pengeluaran berhasil dihapus", fiber.Map{"expense_id": expenseID})
}
