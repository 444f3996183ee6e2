// internals/features/notifications/controller/notification_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"acex_backend/internals/features/notifications/dto"
	"acex_backend/internals/features/notifications/service"
	helper "acex_backend/internals/helpers"
)

var validate = validator.New()

type NotificationController struct {
	DB      *gorm.DB
	Service *service.NotificationService
}

func NewNotificationController(db *gorm.DB, svc *service.NotificationService) *NotificationController {
	return &NotificationController{DB: db, Service: svc}
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	idStr, _ := c.Locals("user_id").(string)
	return uuid.Parse(idStr)
}

// POST /api/notifications/tokens
func (ctrl *NotificationController) RegisterToken(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.RegisterTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	row, err := ctrl.Service.RegisterToken(userID, req.Token, req.DeviceInfo)
	if err != nil {
		if errors.Is(err, service.ErrTokenRequired) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Token tidak boleh kosong")
		}
		log.Printf("[ERROR] register token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan token")
	}

	return helper.JsonCreated(c, "Token berhasil didaftarkan", row)
}

// DELETE /api/notifications/tokens
func (ctrl *NotificationController) RemoveToken(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.RemoveTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	if err := ctrl.Service.RemoveToken(userID, req.Token); err != nil {
		log.Printf("[ERROR] remove token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus token")
	}
	return helper.JsonDeleted(c, "Token berhasil dihapus", nil)
}

// DELETE /api/notifications/tokens/all
func (ctrl *NotificationController) RemoveAllTokens(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := ctrl.Service.RemoveAllTokens(userID); err != nil {
		log.Printf("[ERROR] remove all tokens: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus token")
	}
	return helper.JsonDeleted(c, "Semua token berhasil dihapus", nil)
}

// POST /api/notifications/send (admin/coordinator)
func (ctrl *NotificationController) SendToUsers(c *fiber.Ctx) error {
	var req dto.SendToUsersRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	success, err := ctrl.Service.SendToUsers(c.UserContext(), req.UserIDs, req.Title, req.Body, req.Data)
	if err != nil {
		log.Printf("[ERROR] send push: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal mengirim notifikasi")
	}

	return helper.JsonOK(c, "Notifikasi terkirim", fiber.Map{"success_count": success})
}

// POST /api/notifications/topic (admin/coordinator)
func (ctrl *NotificationController) SendToTopic(c *fiber.Ctx) error {
	var req dto.SendToTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	if err := ctrl.Service.SendToTopic(c.UserContext(), req.Topic, req.Title, req.Body, req.Data); err != nil {
		log.Printf("[ERROR] send topic push: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal mengirim notifikasi topik")
	}
	return helper.JsonOK(c, "Notifikasi topik terkirim", nil)
}
