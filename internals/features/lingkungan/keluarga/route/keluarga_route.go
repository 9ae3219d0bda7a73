// file: internals/features/lingkungan/keluarga/route/keluarga_route.go
package route

import (
	"lingkunganku_backend/internals/constants"
	"lingkunganku_backend/internals/features/lingkungan/keluarga/controller"
	authMiddleware "lingkunganku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// KeluargaAdminRoutes: data umat dikelola sekretariat.
func KeluargaAdminRoutes(api fiber.Router, db *gorm.DB) {
	kc := controller.NewKeluargaController(db)

	keluarga := api.Group("/keluarga",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorPengurus("data umat"),
			constants.SekretariatRoles,
		),
	)

	keluarga.Get("/", kc.GetAll)
	keluarga.Get("/:id", kc.GetByID)
	keluarga.Post("/", kc.Create)
	keluarga.Put("/:id", kc.Update)
	keluarga.Post("/:id/tutup", kc.Tutup)

	keluarga.Put("/:id/pasangan", kc.SetPasangan)
	keluarga.Delete("/:id/pasangan", kc.DeletePasangan)
	keluarga.Post("/:id/tanggungan", kc.AddTanggungan)
	keluarga.Delete("/:id/tanggungan/:tanggunganId", kc.DeleteTanggungan)
}
