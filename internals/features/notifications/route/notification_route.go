// internals/features/notifications/route/notification_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/constants"
	"acex_backend/internals/features/notifications/controller"
	"acex_backend/internals/features/notifications/service"
	"acex_backend/internals/middlewares/auth"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB, svc *service.NotificationService) {
	ctrl := controller.NewNotificationController(db, svc)

	r := api.Group("/notifications")
	r.Post("/tokens", ctrl.RegisterToken)
	r.Delete("/tokens/all", ctrl.RemoveAllTokens)
	r.Delete("/tokens", ctrl.RemoveToken)

	coordinatorUp := auth.OnlyRoles(constants.RoleErrorCoordinator("mengirim notifikasi"), constants.CoordinatorAndAbove...)
	r.Post("/send", coordinatorUp, ctrl.SendToUsers)
	r.Post("/topic", coordinatorUp, ctrl.SendToTopic)
}
