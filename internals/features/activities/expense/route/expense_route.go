// internals/features/activities/expense/route/expense_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/constants"
	"acex_backend/internals/features/activities/expense/controller"
	"acex_backend/internals/middlewares/auth"
)

func ExpenseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExpenseController(db)

	coordinatorUp := auth.OnlyRoles(constants.RoleErrorCoordinator("mengelola pengeluaran"), constants.CoordinatorAndAbove...)
	adminOnly := auth.OnlyRoles(constants.RoleErrorAdmin("menghapus pengeluaran"), constants.AdminOnly...)

	api.Get("/activities/:id/expenses", ctrl.GetByActivity)
	api.Post("/activities/:id/expenses", coordinatorUp, ctrl.Create)

	r := api.Group("/expenses")
	r.Put("/:expenseId", coordinatorUp, ctrl.Update)
	r.Delete("/:expenseId", adminOnly, ctrl.Delete)
}
