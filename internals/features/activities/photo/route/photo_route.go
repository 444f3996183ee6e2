// internals/features/activities/photo/route/photo_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/constants"
	"acex_backend/internals/features/activities/photo/controller"
	"acex_backend/internals/helpers/storage"
	"acex_backend/internals/middlewares/auth"
)

func PhotoRoutes(api fiber.Router, db *gorm.DB, blob storage.BlobService) {
	ctrl := controller.NewPhotoController(db, blob)

	coordinatorUp := auth.OnlyRoles(constants.RoleErrorCoordinator("mengelola foto aktivitas"), constants.CoordinatorAndAbove...)

	api.Get("/activities/:id/photos", ctrl.GetByActivity)
	api.Post("/activities/:id/photos", coordinatorUp, ctrl.Upload)
	api.Delete("/photos/:photoId", coordinatorUp, ctrl.Delete)
}
