// internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/constants"
	"acex_backend/internals/features/users/user/controller"
	"acex_backend/internals/middlewares/auth"
)

// UserRoutes: administrasi akun, semuanya khusus admin.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	adminOnly := auth.OnlyRoles(constants.RoleErrorAdmin("administrasi user"), constants.AdminOnly...)

	r := api.Group("/users", adminOnly)
	r.Get("/", ctrl.GetAll)
	r.Get("/:id", ctrl.GetByID)
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
