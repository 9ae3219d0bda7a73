// file: internals/features/finance/dana_mandiri/route/dana_mandiri_route.go
package route

import (
	"lingkunganku_backend/internals/constants"
	"lingkunganku_backend/internals/features/finance/dana_mandiri/controller"
	authMiddleware "lingkunganku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DanaMandiriAdminRoutes: pencatatan iuran oleh bendahara.
func DanaMandiriAdminRoutes(api fiber.Router, db *gorm.DB) {
	dc := controller.NewDanaMandiriController(db)

	dm := api.Group("/danamandiri",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorBendahara("Dana Mandiri"),
			constants.KeuanganRoles,
		),
	)

	dm.Get("/", dc.GetAll)
	dm.Post("/", dc.Create)
	dm.Post("/bulk", dc.CreateBulk)
	dm.Get("/rekap/:keluargaId", dc.Rekap)
	dm.Post("/setor", dc.TandaiSetor)
	dm.Get("/laporan-setoran", dc.LaporanSetoran)
}

// DanaMandiriUserRoutes: umat melihat rekap keluarganya sendiri.
func DanaMandiriUserRoutes(api fiber.Router, db *gorm.DB) {
	dc := controller.NewDanaMandiriController(db)

	dm := api.Group("/danamandiri")
	dm.Get("/rekap-saya", dc.RekapSaya)
}
