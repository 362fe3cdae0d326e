package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"mergington.edu/activities-backend/internal/pkg/bininfo"
	"mergington.edu/activities-backend/internal/server/svr"
	"mergington.edu/activities-backend/internal/service"
)

type Meta struct {
	fx.In

	HealthService *service.Health
}

func RegisterMeta(meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)

	meta.Get("/health", cache.New(cache.Config{
		// cache it for a second to mitigate potential DDoS
		Expiration: time.Second,
	}), c.Health)
}

// @Summary  Get Binary Info
// @Tags     Meta
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /api/_/bininfo [GET]
func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
	})
}

// @Summary  Health Check
// @Tags     Meta
// @Produce  json
// @Success  200  {object}  map[string]string
// @Failure  500  {object}  mherr.SchoolError  "Registry not seeded or event bus unreachable"
// @Router   /api/_/health [GET]
func (c *Meta) Health(ctx *fiber.Ctx) error {
	if err := c.HealthService.Ping(ctx.UserContext()); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"status": "ok",
	})
}
