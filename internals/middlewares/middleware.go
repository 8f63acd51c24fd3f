package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "petasan_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang seluruh middleware global
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
}
