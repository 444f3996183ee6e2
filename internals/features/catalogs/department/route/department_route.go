// internals/features/catalogs/department/route/department_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/constants"
	"acex_backend/internals/features/catalogs/department/controller"
	"acex_backend/internals/middlewares/auth"
)

// DepartmentRoutes: baca untuk semua user login, mutasi khusus admin
func DepartmentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDepartmentController(db)

	r := api.Group("/departments")
	r.Get("/", ctrl.GetAll)
	r.Get("/:id", ctrl.GetByID)

	adminOnly := auth.OnlyRoles(constants.RoleErrorAdmin("mengelola departemen"), constants.AdminOnly...)
	r.Post("/", adminOnly, ctrl.Create)
	r.Put("/:id", adminOnly, ctrl.Update)
	r.Delete("/:id", adminOnly, ctrl.Delete)
}
