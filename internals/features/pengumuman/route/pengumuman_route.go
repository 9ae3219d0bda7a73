// file: internals/features/pengumuman/route/pengumuman_route.go
package route

import (
	"lingkunganku_backend/internals/constants"
	"lingkunganku_backend/internals/features/pengumuman/controller"
	authMiddleware "lingkunganku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PengumumanAdminRoutes: penerbitan oleh sekretariat.
func PengumumanAdminRoutes(api fiber.Router, db *gorm.DB) {
	pc := controller.NewPengumumanController(db)

	pengumuman := api.Group("/pengumuman",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorPengurus("pengumuman"),
			constants.SekretariatRoles,
		),
	)

	pengumuman.Post("/", pc.Create)
	pengumuman.Post("/lampiran", pc.UploadLampiran)
}

// PengumumanUserRoutes: baca, difilter per role viewer.
func PengumumanUserRoutes(api fiber.Router, db *gorm.DB) {
	pc := controller.NewPengumumanController(db)

	pengumuman := api.Group("/pengumuman")
	pengumuman.Get("/", pc.GetForViewer)
	pengumuman.Get("/:id", pc.GetByID)
	pengumuman.Get("/:id/lampiran/*", pc.ServeLampiran)
}
