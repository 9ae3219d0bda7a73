// file: internals/features/pengajuan/route/pengajuan_route.go
package route

import (
	"lingkunganku_backend/internals/constants"
	"lingkunganku_backend/internals/features/pengajuan/controller"
	authMiddleware "lingkunganku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PengajuanAdminRoutes: daftar dan proses approval oleh pengurus inti.
func PengajuanAdminRoutes(api fiber.Router, db *gorm.DB) {
	pc := controller.NewPengajuanController(db)

	approvalRoles := []constants.Role{
		constants.RoleSuperUser,
		constants.RoleKetua,
		constants.RoleWakilKetua,
		constants.RoleSekretaris,
		constants.RoleWakilSekretaris,
	}

	approval := api.Group("/approval",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorKetua("approval pengajuan"),
			approvalRoles,
		),
	)

	approval.Get("/", pc.GetAll)
	approval.Get("/:id", pc.GetByID)
	approval.Patch("/:id/tindak-lanjut", pc.TindakLanjut)
	approval.Patch("/:id/update-status", pc.UpdateStatus)
	approval.Patch("/:id/hasil-akhir", pc.HasilAkhir)
}

// PengajuanUserRoutes: umat membuat dan memantau pengajuannya sendiri.
func PengajuanUserRoutes(api fiber.Router, db *gorm.DB) {
	pc := controller.NewPengajuanController(db)

	pengajuan := api.Group("/pengajuan")
	pengajuan.Post("/", pc.Create)
	pengajuan.Get("/saya", pc.GetMine)
}
