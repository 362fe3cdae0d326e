package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"mergington.edu/activities-backend/internal/model"
	"mergington.edu/activities-backend/internal/model/types"
	"mergington.edu/activities-backend/internal/pkg/cachectrl"
	"mergington.edu/activities-backend/internal/server/svr"
	"mergington.edu/activities-backend/internal/service"
	"mergington.edu/activities-backend/internal/util/rekuest"
)

var _ model.Activity

type Activity struct {
	fx.In

	ActivityService *service.Activity
}

func RegisterActivity(activities *svr.Activities, c Activity) {
	activities.Get("/", c.GetActivities)
	activities.Post("/:name/signup", c.Signup)
	activities.Post("/:name/unregister", c.Unregister)
}

// @Summary  List Activities
// @Tags     Activity
// @Produce  json
// @Success  200  {object}  map[string]model.Activity  "Activity records keyed by name, in registry order"
// @Failure  500  {object}  mherr.SchoolError   "An unexpected error occurred"
// @Router   /activities [GET]
func (c *Activity) GetActivities(ctx *fiber.Ctx) error {
	body, err := c.ActivityService.GetActivitiesJSON(ctx.UserContext())
	if err != nil {
		return err
	}

	// a listing issued right after a signup must already show it, so opt
	// clients out of response caching
	cachectrl.OptOut(ctx)

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return ctx.Send(body)
}

// @Summary  Sign up for an Activity
// @Tags     Activity
// @Produce  json
// @Param    name   path      string  true  "Activity name (exact match)"
// @Param    email  query     string  true  "Student email"
// @Success  200    {object}  types.RosterChangeResponse
// @Failure  400    {object}  mherr.SchoolError  "Student is already signed up for this activity"
// @Failure  404    {object}  mherr.SchoolError  "Activity not found"
// @Router   /activities/{name}/signup [POST]
func (c *Activity) Signup(ctx *fiber.Ctx) error {
	name := ctx.Params("name")

	var req types.RosterRequest
	if err := rekuest.ValidQuery(ctx, &req); err != nil {
		return err
	}

	if _, err := c.ActivityService.Signup(ctx.UserContext(), name, req.Email); err != nil {
		return err
	}

	return ctx.JSON(types.RosterChangeResponse{
		Message: fmt.Sprintf("Signed up %s for %s", req.Email, name),
	})
}

// @Summary  Unregister from an Activity
// @Tags     Activity
// @Produce  json
// @Param    name   path      string  true  "Activity name (exact match)"
// @Param    email  query     string  true  "Student email"
// @Success  200    {object}  types.RosterChangeResponse
// @Failure  400    {object}  mherr.SchoolError  "Student is not signed up for this activity"
// @Failure  404    {object}  mherr.SchoolError  "Activity not found"
// @Router   /activities/{name}/unregister [POST]
func (c *Activity) Unregister(ctx *fiber.Ctx) error {
	name := ctx.Params("name")

	var req types.RosterRequest
	if err := rekuest.ValidQuery(ctx, &req); err != nil {
		return err
	}

	if _, err := c.ActivityService.Unregister(ctx.UserContext(), name, req.Email); err != nil {
		return err
	}

	return ctx.JSON(types.RosterChangeResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", req.Email, name),
	})
}
