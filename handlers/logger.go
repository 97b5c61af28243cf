package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/stratus-hq/site/local"
)

// RequestLogger attaches a logger carrying the request id to the context and
// logs one line per request. It must run after the requestid middleware.
func RequestLogger(c *fiber.Ctx) error {
	l := log.With().Str("request_id", local.RequestID(c)).Logger()
	local.SetLogger(c, &l)

	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status = fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		}
	}

	evt := l.Info()
	if status >= fiber.StatusInternalServerError {
		evt = l.Error().Err(err)
	}
	evt.Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", status).
		Dur("latency", time.Since(start)).
		Msg("request")
	return err
}
