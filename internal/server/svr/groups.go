package svr

import (
	"github.com/gofiber/fiber/v2"
)

// Activities groups the roster endpoints under /activities.
type Activities struct {
	fiber.Router
}

// Meta groups the operational endpoints under /api/_ so they never collide
// with the activity namespace.
type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*Activities, *Meta) {
	activities := app.Group("/activities")
	meta := app.Group("/api/_")

	return &Activities{Router: activities}, &Meta{Router: meta}
}
