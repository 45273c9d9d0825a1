package router

import (
	"github.com/gofiber/fiber/v2"
)

// InstallRouter wires every route group into the app. The JSON 404
// fallback must be registered last.
func InstallRouter(app *fiber.App) {
	setupApiRoutes(app)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "newswire API",
		})
	})

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Route not found",
		})
	})
}
