package meta

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"mergington.edu/activities-backend/docs"
	"mergington.edu/activities-backend/internal/pkg/bininfo"
)

func RegisterSwagger(app *fiber.App) {
	docs.SwaggerInfo.Version = bininfo.Version
	app.Get("/swagger/*", swagger.HandlerDefault) // default
}
