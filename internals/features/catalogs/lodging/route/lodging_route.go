// internals/features/catalogs/lodging/route/lodging_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/constants"
	"acex_backend/internals/features/catalogs/lodging/controller"
	"acex_backend/internals/middlewares/auth"
)

func LodgingRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLodgingController(db)

	r := api.Group("/lodgings")
	// "/cities" harus terdaftar sebelum "/:id"
	r.Get("/cities", ctrl.GetCities)
	r.Get("/", ctrl.GetAll)
	r.Get("/:id", ctrl.GetByID)

	adminOnly := auth.OnlyRoles(constants.RoleErrorAdmin("mengelola penginapan"), constants.AdminOnly...)
	r.Post("/", adminOnly, ctrl.Create)
	r.Put("/:id", adminOnly, ctrl.Update)
	r.Delete("/:id", adminOnly, ctrl.Delete)
}
