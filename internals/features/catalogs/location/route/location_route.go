// internals/features/catalogs/location/route/location_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/constants"
	"acex_backend/internals/features/catalogs/location/controller"
	"acex_backend/internals/middlewares/auth"
)

func LocationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLocationController(db)

	r := api.Group("/locations")
	r.Get("/", ctrl.GetAll)
	r.Get("/:id", ctrl.GetByID)

	adminOnly := auth.OnlyRoles(constants.RoleErrorAdmin("mengelola lokasi"), constants.AdminOnly...)
	r.Post("/", adminOnly, ctrl.Create)
	r.Put("/:id", adminOnly, ctrl.Update)
	r.Delete("/:id", adminOnly, ctrl.Delete)
}
