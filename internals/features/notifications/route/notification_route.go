// file: internals/features/notifications/route/notification_route.go
package route

import (
	"lingkunganku_backend/internals/features/notifications/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NotificationRoutes: semua user login boleh melihat notifikasi miliknya.
func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	nc := controller.NewNotificationController(db)

	notif := api.Group("/notifications")
	notif.Get("/", nc.GetMine)
	notif.Patch("/read-all", nc.MarkAllRead)
	notif.Patch("/:id/read", nc.MarkRead)
	notif.Delete("/", nc.ClearMine)
}
