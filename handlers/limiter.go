package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/stratus-hq/site/config"
	"github.com/stratus-hq/site/local"
)

// RateLimiter limits each client IP to cfg.RateLimitMax requests per
// cfg.RateLimitExp window.
func RateLimiter(cfg *config.Config) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitExp,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			local.Logger(c).Warn().Str("ip", c.IP()).Msg("rate limit reached")
			return fiber.NewError(fiber.StatusTooManyRequests,
				"Too many requests. Please try again later.")
		},
	})
}
