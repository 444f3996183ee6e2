// internals/features/teachers/teacher/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/constants"
	"acex_backend/internals/features/teachers/teacher/controller"
	"acex_backend/internals/helpers/storage"
	"acex_backend/internals/middlewares/auth"
)

func TeacherRoutes(api fiber.Router, db *gorm.DB, blob storage.BlobService) {
	ctrl := controller.NewTeacherController(db, blob)

	r := api.Group("/teachers")
	r.Get("/", ctrl.GetAll)
	r.Get("/:id", ctrl.GetByID)

	coordinatorUp := auth.OnlyRoles(constants.RoleErrorCoordinator("mengelola guru"), constants.CoordinatorAndAbove...)
	adminOnly := auth.OnlyRoles(constants.RoleErrorAdmin("menghapus guru"), constants.AdminOnly...)

	r.Post("/", coordinatorUp, ctrl.Create)
	r.Put("/:id", coordinatorUp, ctrl.Update)
	r.Delete("/:id", adminOnly, ctrl.Delete)

	r.Post("/:id/photo", coordinatorUp, ctrl.UploadPhoto)
	r.Delete("/:id/photo", coordinatorUp, ctrl.DeletePhoto)
}
