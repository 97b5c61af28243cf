package handlers

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/stratus-hq/site/local"
	"github.com/stratus-hq/site/pricing"
	"github.com/stratus-hq/site/ui"
)

// HandleAboutAction dispatches a control activated on the About page.
func (s *Site) HandleAboutAction(c *fiber.Ctx) error {
	req, err := s.bindAction(c)
	if err != nil {
		return err
	}

	var target string
	props := ui.AboutProps{
		OnBack: func() { target = s.cfg.HomeURL },
	}
	if err := props.Dispatch(ui.Event(req.Event), req.Plan); err != nil {
		return dispatchError(err)
	}
	return navigate(c, target)
}

// HandlePricingAction dispatches a control activated on the Pricing page.
func (s *Site) HandlePricingAction(c *fiber.Ctx) error {
	req, err := s.bindAction(c)
	if err != nil {
		return err
	}

	var target string
	props := ui.PricingProps{
		OnBack: func() { target = s.cfg.HomeURL },
		OnSelectPlan: func(id pricing.PlanID) {
			target = signupURL(s.cfg.SignupURL, id)
			local.Logger(c).Info().Str("plan", id.String()).Msg("plan selected")
		},
	}
	if err := props.Dispatch(ui.Event(req.Event), req.Plan); err != nil {
		return dispatchError(err)
	}
	return navigate(c, target)
}

func dispatchError(err error) error {
	switch {
	case errors.Is(err, ui.ErrUnknownEvent):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, pricing.ErrUnknownPlan):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return err
	}
}

// signupURL appends the selected plan to the signup address, keeping any
// query it already has.
func signupURL(base string, id pricing.PlanID) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set("plan", id.String())
	u.RawQuery = q.Encode()
	return u.String()
}

// navigate sends the browser to target. htmx requests get HX-Redirect so the
// whole page changes instead of a swapped fragment.
func navigate(c *fiber.Ctx, target string) error {
	if target == "" {
		target = "/"
	}
	if c.Get("HX-Request") == "true" {
		c.Set("HX-Redirect", target)
		return c.SendStatus(fiber.StatusOK)
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}
