package server

import (
	"github.com/gofiber/fiber/v2"
)

func (s *Server) registerRoutes() {
	app, site := s.App, s.site

	// Marketing pages
	app.Get("/", site.HandleHome)
	app.Get("/about", site.HandleAbout)
	app.Get("/pricing", site.HandlePricing)

	// Page controls
	app.Post("/about/actions/:event", site.HandleAboutAction)
	app.Post("/pricing/actions/:event/:plan?", site.HandlePricingAction)

	// Utility
	app.Get("/health", site.HandleHealth)
	app.Get("/sitemap.xml", site.HandleSitemap)
	app.Get("/.well-known/appspecific/com.chrome.devtools.json", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Static files last so pages win over same-named files
	app.Static("/", s.cfg.StaticDir)
}
