package handlers

import (
	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/stratus-hq/site/ui"
)

func (s *Site) HandleHome(c *fiber.Ctx) error {
	return s.renderCached(c, "home", func() g.Node {
		return ui.HomePage(s.assets)
	})
}

// HandleAbout displays the About page
func (s *Site) HandleAbout(c *fiber.Ctx) error {
	return s.renderCached(c, ui.PageAbout, func() g.Node {
		return ui.AboutPage(ui.AboutProps{Assets: s.assets})
	})
}

// HandlePricing displays the Pricing page
func (s *Site) HandlePricing(c *fiber.Ctx) error {
	return s.renderCached(c, ui.PagePricing, func() g.Node {
		return ui.PricingPage(ui.PricingProps{
			ContactEmail: s.cfg.ContactEmail,
			Assets:       s.assets,
		})
	})
}
