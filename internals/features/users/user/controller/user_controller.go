// internals/features/users/user/controller/user_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"acex_backend/internals/constants"
	authservice "acex_backend/internals/features/users/auth/service"
	"acex_backend/internals/features/users/user/dto"
	"acex_backend/internals/features/users/user/model"
	helper "acex_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/users
func (ctrl *UserController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	search := strings.TrimSpace(c.Query("search"))
	role := strings.TrimSpace(c.Query("role"))

	tx := ctrl.DB.Model(&model.UserModel{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(user_username) LIKE ?", like)
	}
	if role != "" {
		tx = tx.Where("user_role = ?", role)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	var users []model.UserModel
	if err := tx.Order("user_username ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return helper.JsonList(c, "Daftar user berhasil diambil", users, helper.BuildPagination(total, p))
}

// GET /api/users/:id
func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return helper.JsonOK(c, "User ditemukan", user)
}

// POST /api/users
func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if !constants.IsKnownRole(req.Role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak dikenal")
	}
	if req.TeacherID != nil {
		if err := ctrl.ensureTeacherExists(*req.TeacherID); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Guru yang ditautkan tidak ditemukan")
		}
	}

	hash, err := authservice.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password tidak valid")
	}

	user := &model.UserModel{
		UserUsername:     strings.TrimSpace(req.Username),
		UserPasswordHash: hash,
		UserRole:         req.Role,
		UserTeacherID:    req.TeacherID,
		UserIsActive:     true,
	}
	if err := ctrl.DB.Create(user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "User berhasil dibuat", user)
}

// PUT /api/users/:id
func (ctrl *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if v, ok := req.Username.Get(); ok {
		v = strings.TrimSpace(v)
		if v == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Username tidak boleh kosong")
		}
		user.UserUsername = v
	}
	if v, ok := req.Role.Get(); ok {
		if !constants.IsKnownRole(v) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak dikenal")
		}
		user.UserRole = v
	}
	if req.TeacherID.Present {
		if req.TeacherID.IsNull() {
			user.UserTeacherID = nil
		} else {
			teacherID := req.TeacherID.Value
			if err := ctrl.ensureTeacherExists(teacherID); err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Guru yang ditautkan tidak ditemukan")
			}
			user.UserTeacherID = &teacherID
		}
	}
	if v, ok := req.IsActive.Get(); ok {
		user.UserIsActive = v
	}
	if v, ok := req.Password.Get(); ok {
		hash, err := authservice.HashPassword(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Password tidak valid")
		}
		user.UserPasswordHash = hash
	}

	if err := ctrl.DB.Save(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui user")
	}

	return helper.JsonUpdated(c, "User berhasil diperbarui", user)
}

// DELETE /api/users/:id — token FCM milik user ikut dihapus
func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM fcm_tokens WHERE fcm_token_user_id = ?`, id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.UserModel{}, "user_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}

	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"user_id": id})
}

func (ctrl *UserController) ensureTeacherExists(id uuid.UUID) error {
	var count int64
	if err := ctrl.DB.Table("teachers").Where("teacher_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
