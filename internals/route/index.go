// internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityRoute "acex_backend/internals/features/activities/activity/route"
	contractRoute "acex_backend/internals/features/activities/contract/route"
	expenseRoute "acex_backend/internals/features/activities/expense/route"
	photoRoute "acex_backend/internals/features/activities/photo/route"
	courseRoute "acex_backend/internals/features/catalogs/course/route"
	departmentRoute "acex_backend/internals/features/catalogs/department/route"
	locationRoute "acex_backend/internals/features/catalogs/location/route"
	lodgingRoute "acex_backend/internals/features/catalogs/lodging/route"
	transportRoute "acex_backend/internals/features/catalogs/transport/route"
	notificationRoute "acex_backend/internals/features/notifications/route"
	notificationService "acex_backend/internals/features/notifications/service"
	teacherRoute "acex_backend/internals/features/teachers/teacher/route"
	authRoute "acex_backend/internals/features/users/auth/route"
	userRoute "acex_backend/internals/features/users/user/route"
	"acex_backend/internals/helpers/storage"
	"acex_backend/internals/middlewares/auth"
)

// SetupRoutes mendaftarkan seluruh route aplikasi.
// /auth/* publik (dengan rate limiter sendiri), sisanya di bawah /api
// dan wajib membawa token.
func SetupRoutes(app *fiber.App, db *gorm.DB, blob storage.BlobService, notifSvc *notificationService.NotificationService) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "acex-backend",
			"status":  "ok",
		})
	})

	authRoute.AuthRoutes(app, db)

	api := app.Group("/api", auth.AuthMiddleware(db))

	activityRoute.ActivityRoutes(api, db, blob)
	photoRoute.PhotoRoutes(api, db, blob)
	contractRoute.ContractRoutes(api, db, blob)
	expenseRoute.ExpenseRoutes(api, db)

	departmentRoute.DepartmentRoutes(api, db)
	courseRoute.CourseRoutes(api, db)
	locationRoute.LocationRoutes(api, db)
	lodgingRoute.LodgingRoutes(api, db)
	transportRoute.TransportCompanyRoutes(api, db)

	teacherRoute.TeacherRoutes(api, db, blob)
	userRoute.UserRoutes(api, db)
	notificationRoute.NotificationRoutes(api, db, notifSvc)
}
