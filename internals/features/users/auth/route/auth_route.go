// file: internals/features/users/auth/route/auth_route.go
package route

import (
	controller "lingkunganku_backend/internals/features/users/auth/controller"
	rateLimiter "lingkunganku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthRoutes: endpoint publik (login/register/reset) di bawah /api/auth.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/refresh-token", authController.RefreshToken)
	baseAuth.Post("/forgot-password/reset", rateLimiter.ResetPasswordRateLimiter(), authController.ResetPassword)
}

// AuthProtectedRoutes: endpoint yang butuh token aktif (dipasang setelah AuthMiddleware).
func AuthProtectedRoutes(api fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/logout", authController.Logout)
	auth.Post("/change-password", authController.ChangePassword)
	auth.Get("/me", authController.Me)
}
