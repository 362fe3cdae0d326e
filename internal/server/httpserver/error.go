package httpserver

import (
	"strconv"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"mergington.edu/activities-backend/internal/pkg/mherr"
)

func handleCustomError(ctx *fiber.Ctx, e *mherr.SchoolError) error {
	if e.StatusCode < fiber.StatusInternalServerError {
		log.Warn().
			Err(e).
			Str("method", ctx.Method()).
			Str("path", ctx.Path()).
			Msg(e.Detail)
	}

	// The wire shape is {"detail": ...}: ErrorCode stays inside the process
	// and only ever surfaces through logs and metrics.
	body := fiber.Map{
		"detail": e.Detail,
	}

	// Add extra details if needed
	if e.Extras != nil && len(*e.Extras) > 0 {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	// Use custom error handler to return JSON error responses
	if e, ok := err.(*mherr.SchoolError); ok {
		return handleCustomError(ctx, e)
	}

	// Default 500 statuscode
	re := *mherr.ErrInternalError

	if e, ok := err.(*fiber.Error); ok {
		// Overwrite status code if fiber.Error type & provided code
		re.StatusCode = e.Code
		re.ErrorCode = "UNKNOWN_ERROR"
		re.Detail = e.Message
	}

	// A fiber.Error with a 4xx code is still just a client fault: no stack,
	// no Sentry report.
	if re.StatusCode < fiber.StatusInternalServerError {
		return handleCustomError(ctx, &re)
	}

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
		hub.CaptureException(err)
	}

	return handleCustomError(ctx, &re)
}
