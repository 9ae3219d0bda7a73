// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentRoute "lingkunganku_backend/internals/features/finance/payments/route"
	authRoute "lingkunganku_backend/internals/features/users/auth/route"
	authMiddleware "lingkunganku_backend/internals/middlewares/auth"
	routeDetails "lingkunganku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	SetupBaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up PaymentWebhookRoutes...")
	paymentRoute.PaymentWebhookRoutes(app, db)

	// ===================== USER (/api/u) =====================
	// Semua user login; tanpa pemeriksaan role per route.
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	routeDetails.UserRoutes(user, db)

	// ===================== ADMIN (/api/a) =====================
	// Login + evaluasi akses path per role; route yang tidak terdaftar
	// ditolak untuk semua role, superuser sekalipun.
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RouteAccessMiddleware(),
	)
	routeDetails.AdminRoutes(admin, db)
}
