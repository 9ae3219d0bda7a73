// file: internals/features/finance/ikata/route/ikata_route.go
package route

import (
	"lingkunganku_backend/internals/constants"
	"lingkunganku_backend/internals/features/finance/ikata/controller"
	authMiddleware "lingkunganku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func IkataAdminRoutes(api fiber.Router, db *gorm.DB) {
	ic := controller.NewIkataController(db)

	ikata := api.Group("/ikata",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorBendahara("IKATA"),
			constants.KeuanganRoles,
		),
	)

	ikata.Get("/", ic.GetAll)
	ikata.Post("/", ic.Create)
	ikata.Get("/rekap/:keluargaId", ic.Rekap)
	ikata.Post("/setor", ic.TandaiSetor)
}
