package local

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const loggerKey = "logger"

// RequestID returns the id set by the requestid middleware, or "" if it has
// not run.
func RequestID(c *fiber.Ctx) string {
	rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
	return rid
}

func SetLogger(c *fiber.Ctx, l *zerolog.Logger) {
	c.Locals(loggerKey, l)
}

// Logger returns the request-scoped logger, or the global one when none was set.
func Logger(c *fiber.Ctx) *zerolog.Logger {
	if l, ok := c.Locals(loggerKey).(*zerolog.Logger); ok {
		return l
	}
	return &log.Logger
}
