// file: internals/features/finance/kas/route/kas_route.go
package route

import (
	"lingkunganku_backend/internals/constants"
	"lingkunganku_backend/internals/features/finance/kas/controller"
	"lingkunganku_backend/internals/features/finance/kas/model"
	authMiddleware "lingkunganku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// KasRoutes memasang dua buku kas: /lingkungan/kas dan /ikata/kas.
func KasRoutes(api fiber.Router, db *gorm.DB) {
	guard := authMiddleware.OnlyRolesSlice(
		constants.RoleErrorBendahara("buku kas"),
		constants.KeuanganRoles,
	)

	mount := func(prefix, buku string) {
		kc := controller.NewKasController(db, buku)
		kas := api.Group(prefix, guard)
		kas.Get("/", kc.GetLedger)
		kas.Post("/", kc.Create)
		kas.Get("/saldo", kc.Saldo)
	}

	mount("/lingkungan/kas", model.BukuLingkungan)
	mount("/ikata/kas", model.BukuIkata)
}
