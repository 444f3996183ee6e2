// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"acex_backend/internals/features/users/auth/dto"
	"acex_backend/internals/features/users/auth/service"
	helper "acex_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB      *gorm.DB
	Service *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Service: service.NewAuthService(db)}
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	user, err := ctrl.Service.Login(req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Username/email atau password salah")
		}
		log.Printf("[ERROR] login: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	token, err := service.CreateToken(user)
	if err != nil {
		log.Printf("[ERROR] create token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.AuthResponse{
		Token:    token,
		UserID:   user.UserID,
		Username: user.UserUsername,
		Role:     user.UserRole,
	})
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	user, err := ctrl.Service.Register(req.Username, req.Password, req.TeacherID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUsername):
			return helper.JsonError(c, fiber.StatusBadRequest, "Username hanya boleh huruf, angka, '-' dan '_'")
		case errors.Is(err, service.ErrUsernameTaken):
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah dipakai")
		case errors.Is(err, service.ErrEmptyPassword):
			return helper.JsonError(c, fiber.StatusBadRequest, "Password tidak boleh kosong")
		default:
			log.Printf("[ERROR] register: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan user")
		}
	}

	token, err := service.CreateToken(user)
	if err != nil {
		log.Printf("[ERROR] create token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", dto.AuthResponse{
		Token:    token,
		UserID:   user.UserID,
		Username: user.UserUsername,
		Role:     user.UserRole,
	})
}

// POST /api/auth/change-password (butuh login)
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	if err := ctrl.Service.ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongOldPassword):
			return helper.JsonError(c, fiber.StatusBadRequest, "Password lama tidak cocok")
		case errors.Is(err, service.ErrUserNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		default:
			log.Printf("[ERROR] change password: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengganti password")
		}
	}

	return helper.JsonOK(c, "Password berhasil diganti", nil)
}
