// file: internals/features/users/user/route/user_route.go
package route

import (
	"lingkunganku_backend/internals/constants"
	"lingkunganku_backend/internals/features/users/user/controller"
	authMiddleware "lingkunganku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserAdminRoutes: manajemen akun & role, khusus superuser.
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	userController := controller.NewUserController(db)

	admin := api.Group("/admin/users",
		authMiddleware.OnlyRolesSlice("❌ Hanya superuser yang boleh mengelola akun.", constants.SuperUserOnly),
	)

	admin.Get("/", userController.GetAll)
	admin.Get("/:id", userController.GetByID)
	admin.Patch("/:id/role", userController.UpdateRole)
	admin.Patch("/:id/active", userController.UpdateActive)
	admin.Patch("/:id/keluarga", userController.LinkKeluarga)
	admin.Post("/:id/reset-password", userController.AdminResetPassword)
}
