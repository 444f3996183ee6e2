// internals/features/activities/contract/route/contract_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/constants"
	"acex_backend/internals/features/activities/contract/controller"
	"acex_backend/internals/helpers/storage"
	"acex_backend/internals/middlewares/auth"
)

func ContractRoutes(api fiber.Router, db *gorm.DB, blob storage.BlobService) {
	ctrl := controller.NewContractController(db, blob)

	coordinatorUp := auth.OnlyRoles(constants.RoleErrorCoordinator("mengelola kontrak"), constants.CoordinatorAndAbove...)
	adminOnly := auth.OnlyRoles(constants.RoleErrorAdmin("menghapus kontrak"), constants.AdminOnly...)

	api.Get("/activities/:id/contracts", ctrl.GetByActivity)
	api.Post("/activities/:id/contracts", coordinatorUp, ctrl.Create)

	r := api.Group("/contracts")
	r.Get("/:contractId", ctrl.GetByID)
	r.Put("/:contractId", coordinatorUp, ctrl.Update)
	r.Delete("/:contractId", adminOnly, ctrl.Delete)
	r.Put("/:contractId/documents/:kind", coordinatorUp, ctrl.UploadDocument)
	r.Get("/:contractId/documents/:kind", ctrl.DownloadDocument)
}
