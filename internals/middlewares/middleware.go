package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"lingkunganku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dengan urutan tetap:
// recovery paling luar, lalu logger, CORS, dan rate limiter global.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
