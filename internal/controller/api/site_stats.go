package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"mergington.edu/activities-backend/internal/pkg/cachectrl"
	"mergington.edu/activities-backend/internal/service"
)

type SiteStats struct {
	fx.In

	SiteStatsService *service.SiteStats
}

func RegisterSiteStats(app *fiber.App, c SiteStats) {
	app.Get("/stats", c.GetSiteStats)
}

// @Summary  Get Site Stats
// @Tags     SiteStats
// @Produce  json
// @Success  200  {object}  model.SiteStats
// @Failure  500  {object}  mherr.SchoolError  "An unexpected error occurred"
// @Router   /stats [GET]
func (c *SiteStats) GetSiteStats(ctx *fiber.Ctx) error {
	siteStats, err := c.SiteStatsService.GetSiteStats(ctx.UserContext())
	if err != nil {
		return err
	}

	cachectrl.OptInCustom(ctx, time.Now(), time.Minute)

	return ctx.JSON(siteStats)
}
