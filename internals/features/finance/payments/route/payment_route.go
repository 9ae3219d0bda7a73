// file: internals/features/finance/payments/route/payment_route.go
package route

import (
	"lingkunganku_backend/internals/features/finance/payments/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PaymentWebhookRoutes: endpoint notifikasi gateway, tanpa auth
// (diverifikasi lewat signature key).
func PaymentWebhookRoutes(app *fiber.App, db *gorm.DB) {
	pc := controller.NewPaymentController(db)
	app.Post("/api/payments/notification", pc.HandleNotification)
}

// PaymentUserRoutes: umat membuat dan memantau order pembayaran online.
func PaymentUserRoutes(api fiber.Router, db *gorm.DB) {
	pc := controller.NewPaymentController(db)

	payments := api.Group("/payments")
	payments.Post("/danamandiri", pc.CreateDanaMandiriOrder)
	payments.Get("/orders", pc.GetMyOrders)
}
