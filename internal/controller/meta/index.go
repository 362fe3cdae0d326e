package meta

import (
	"github.com/gofiber/fiber/v2"

	"mergington.edu/activities-backend/internal/app/appconfig"
	"mergington.edu/activities-backend/internal/constant"
)

func RegisterIndex(app *fiber.App, conf *appconfig.Config) {
	// browsers land on the bundled signup page
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(constant.StaticIndexPath, fiber.StatusTemporaryRedirect)
	})

	app.Static("/static", conf.StaticDir)

	app.Get("/api", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"@link":   "https://mergington.edu/activities-backend",
			"message": "Welcome to the Mergington High School Activities API",
		})
	})
}
