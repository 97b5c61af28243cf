package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/stratus-hq/site/local"
	"github.com/stratus-hq/site/ui"
)

// CustomErrorHandler renders application errors as an HTML error page.
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError
	message := "Something went wrong. Please try again later."

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	} else {
		local.Logger(c).Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	}

	c.Status(code)
	return render(c, ui.ErrorPage(code, message))
}
