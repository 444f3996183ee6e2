// internals/features/activities/activity/route/activity_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/constants"
	"acex_backend/internals/features/activities/activity/controller"
	"acex_backend/internals/helpers/storage"
	"acex_backend/internals/middlewares/auth"
)

func ActivityRoutes(api fiber.Router, db *gorm.DB, blob storage.BlobService) {
	ctrl := controller.NewActivityController(db, blob)

	coordinatorUp := auth.OnlyRoles(constants.RoleErrorCoordinator("mengelola aktivitas"), constants.CoordinatorAndAbove...)
	adminOnly := auth.OnlyRoles(constants.RoleErrorAdmin("menghapus aktivitas"), constants.AdminOnly...)

	r := api.Group("/activities")
	r.Get("/", ctrl.GetAll)
	r.Get("/:id", ctrl.GetByID)
	r.Post("/", coordinatorUp, ctrl.Create)
	r.Put("/:id", coordinatorUp, ctrl.Update)
	r.Delete("/:id", adminOnly, ctrl.Delete)

	r.Get("/:id/teachers", ctrl.GetParticipantTeachers)
	r.Put("/:id/teachers", coordinatorUp, ctrl.ReplaceParticipantTeachers)

	r.Get("/:id/groups", ctrl.GetParticipantGroups)
	r.Put("/:id/groups", coordinatorUp, ctrl.ReplaceParticipantGroups)

	r.Get("/:id/locations", ctrl.GetLocations)
	r.Post("/:id/locations", coordinatorUp, ctrl.AddLocation)
	r.Put("/:id/locations/:locationId", coordinatorUp, ctrl.UpdateLocation)
	r.Delete("/:id/locations/:locationId", coordinatorUp, ctrl.RemoveLocation)

	r.Put("/:id/brochure", coordinatorUp, ctrl.UploadBrochure)
	r.Delete("/:id/brochure", coordinatorUp, ctrl.DeleteBrochure)
}
