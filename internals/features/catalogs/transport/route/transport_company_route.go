// internals/features/catalogs/transport/route/transport_company_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/constants"
	"acex_backend/internals/features/catalogs/transport/controller"
	"acex_backend/internals/middlewares/auth"
)

func TransportCompanyRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTransportCompanyController(db)

	r := api.Group("/transport-companies")
	r.Get("/", ctrl.GetAll)
	r.Get("/:id", ctrl.GetByID)

	adminOnly := auth.OnlyRoles(constants.RoleErrorAdmin("mengelola perusahaan transportasi"), constants.AdminOnly...)
	r.Post("/", adminOnly, ctrl.Create)
	r.Put("/:id", adminOnly, ctrl.Update)
	r.Delete("/:id", adminOnly, ctrl.Delete)
}
