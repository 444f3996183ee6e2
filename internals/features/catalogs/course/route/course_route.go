// internals/features/catalogs/course/route/course_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/constants"
	"acex_backend/internals/features/catalogs/course/controller"
	"acex_backend/internals/middlewares/auth"
)

func CourseRoutes(api fiber.Router, db *gorm.DB) {
	courseCtrl := controller.NewCourseController(db)
	groupCtrl := controller.NewStudentGroupController(db)

	adminOnly := auth.OnlyRoles(constants.RoleErrorAdmin("mengelola kursus dan grup"), constants.AdminOnly...)

	courses := api.Group("/courses")
	courses.Get("/", courseCtrl.GetAll)
	courses.Get("/:id", courseCtrl.GetByID)
	courses.Post("/", adminOnly, courseCtrl.Create)
	courses.Put("/:id", adminOnly, courseCtrl.Update)
	courses.Delete("/:id", adminOnly, courseCtrl.Delete)

	groups := api.Group("/groups")
	groups.Get("/", groupCtrl.GetAll)
	groups.Get("/:id", groupCtrl.GetByID)
	groups.Post("/", adminOnly, groupCtrl.Create)
	groups.Put("/:id", adminOnly, groupCtrl.Update)
	groups.Delete("/:id", adminOnly, groupCtrl.Delete)
}
