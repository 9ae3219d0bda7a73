// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	danaMandiriRoute "lingkunganku_backend/internals/features/finance/dana_mandiri/route"
	paymentRoute "lingkunganku_backend/internals/features/finance/payments/route"
	notifRoute "lingkunganku_backend/internals/features/notifications/route"
	pengajuanRoute "lingkunganku_backend/internals/features/pengajuan/route"
	pengumumanRoute "lingkunganku_backend/internals/features/pengumuman/route"
	authRoute "lingkunganku_backend/internals/features/users/auth/route"
)

// UserRoutes: fitur untuk semua user login (umat maupun pengurus),
// dibatasi ke data miliknya sendiri, bukan per role.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthProtectedRoutes(api, db)
	notifRoute.NotificationRoutes(api, db)
	pengumumanRoute.PengumumanUserRoutes(api, db)
	pengajuanRoute.PengajuanUserRoutes(api, db)
	danaMandiriRoute.DanaMandiriUserRoutes(api, db)
	paymentRoute.PaymentUserRoutes(api, db)
}
