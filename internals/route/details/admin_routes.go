// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	danaMandiriRoute "lingkunganku_backend/internals/features/finance/dana_mandiri/route"
	ikataRoute "lingkunganku_backend/internals/features/finance/ikata/route"
	kasRoute "lingkunganku_backend/internals/features/finance/kas/route"
	keluargaRoute "lingkunganku_backend/internals/features/lingkungan/keluarga/route"
	pengajuanRoute "lingkunganku_backend/internals/features/pengajuan/route"
	pengumumanRoute "lingkunganku_backend/internals/features/pengumuman/route"
	userRoute "lingkunganku_backend/internals/features/users/user/route"
)

// AdminRoutes: fitur pengurus. Group sudah melewati evaluasi akses path;
// pemeriksaan role per fitur tetap dipasang di masing-masing route
// sebagai lapisan kedua.
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(api, db)
	keluargaRoute.KeluargaAdminRoutes(api, db)
	danaMandiriRoute.DanaMandiriAdminRoutes(api, db)
	ikataRoute.IkataAdminRoutes(api, db)
	kasRoute.KasRoutes(api, db)
	pengajuanRoute.PengajuanAdminRoutes(api, db)
	pengumumanRoute.PengumumanAdminRoutes(api, db)
}
