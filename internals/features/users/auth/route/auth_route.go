// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acex_backend/internals/features/users/auth/controller"
	"acex_backend/internals/middlewares"
	"acex_backend/internals/middlewares/auth"
)

// AuthRoutes: login/register publik (dengan rate limiter ketat),
// change-password butuh token.
func AuthRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	r := public.Group("/auth")
	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	r.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	r.Post("/change-password", auth.AuthMiddleware(db), ctrl.ChangePassword)
}
