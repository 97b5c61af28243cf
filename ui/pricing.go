package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/stratus-hq/site/pricing"
)

// PricingProps are the inputs of the Pricing page.
type PricingProps struct {
	OnBack       func()
	OnSelectPlan func(pricing.PlanID)
	// ContactEmail adds a mail link to the closing section when set.
	ContactEmail string
	Assets       Assets
}

// Dispatch reports an activated control to the matching callback. For
// EventSelectPlan, arg must be a plan id; anything else is rejected before
// OnSelectPlan is called.
func (p PricingProps) Dispatch(event Event, arg string) error {
	switch event {
	case EventBack:
		if p.OnBack != nil {
			p.OnBack()
		}
		return nil
	case EventSelectPlan:
		id, err := pricing.ParseID(arg)
		if err != nil {
			return err
		}
		if p.OnSelectPlan != nil {
			p.OnSelectPlan(id)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q on %s page", ErrUnknownEvent, event, PagePricing)
	}
}

func PricingPage(p PricingProps) g.Node {
	return Page(
		"Pricing",
		"Simple, transparent pricing for Stratus. Start free for 14 days on any plan.",
		p.Assets,
		[]g.Node{
			navBar(backControl(PagePricing)),
			Main(
				pricingHero(),
				section("pb-20",
					Div(
						Class("grid md:grid-cols-3 gap-8 items-start"),
						g.Map(pricing.Plans(), planCard),
					),
				),
				pricingFAQ(),
				pricingCTA(p.ContactEmail),
			),
		},
	)
}

func pricingHero() g.Node {
	return section("py-20 text-center",
		badge("Pricing"),
		Div(Class("mt-6"), pageHeader("Simple, transparent pricing")),
		P(
			Class("text-xl text-gray-600 max-w-2xl mx-auto"),
			g.Text("Choose the plan that fits your business today. Upgrade, downgrade or cancel whenever you need to."),
		),
	)
}

func planCard(plan pricing.Plan) g.Node {
	class := cardBaseClass + " relative"
	variant := variantOutline
	if plan.Popular {
		class = "bg-white rounded-xl border-2 border-purple-500 shadow-xl relative transform md:scale-105"
		variant = variantPrimary
	}

	return card(class,
		Data("plan", plan.ID.String()),
		g.If(plan.Popular, Data("popular", "true")),
		g.If(plan.Popular,
			Div(
				Class("absolute -top-3 left-1/2 transform -translate-x-1/2"),
				badge("Most Popular", "bg-purple-600 text-white"),
			),
		),
		Div(
			Class("p-8"),
			Div(Class("mb-4"), iconBadge(plan.Icon, plan.Color)),
			H3(Class("text-2xl font-bold mb-2"), g.Text(plan.Name)),
			P(Class("text-gray-600 mb-6"), g.Text(plan.Description)),
			Div(
				Class("mb-6"),
				Span(Class("text-4xl font-bold"), g.Text(plan.Price)),
				Span(Class("text-gray-500"), g.Text(plan.Period)),
			),
			control(PagePricing, EventSelectPlan, plan.ID.String(),
				g.Text(plan.ActionLabel()),
				withVariant(variant),
				withClass("w-full mb-8"),
			),
			Ul(
				Class("space-y-3"),
				g.Map(plan.Features, func(f string) g.Node {
					return Li(
						Data("feature", ""),
						Class("flex items-start gap-2 text-gray-700"),
						icon("check", "w-5 h-5 text-green-500 flex-shrink-0"),
						Span(g.Text(f)),
					)
				}),
				g.Map(plan.Limitations, func(l string) g.Node {
					return Li(
						Data("limitation", ""),
						Class("flex items-start gap-2 text-gray-400"),
						icon("x", "w-5 h-5 flex-shrink-0"),
						Span(g.Text(l)),
					)
				}),
			),
		),
	)
}

func pricingFAQ() g.Node {
	return section("py-20 bg-white",
		sectionHeader("Frequently Asked Questions", ""),
		Div(
			Class("max-w-3xl mx-auto space-y-4"),
			g.Map(pricing.FAQ(), func(item pricing.FAQItem) g.Node {
				return card("",
					Data("faq", ""),
					Div(
						Class("p-6"),
						H3(Class("text-lg font-semibold mb-2"), g.Text(item.Question)),
						P(Class("text-gray-600"), g.Text(item.Answer)),
					),
				)
			}),
		),
	)
}

func pricingCTA(contactEmail string) g.Node {
	return section("py-20 bg-blue-600 text-white text-center",
		H2(Class("text-3xl font-bold mb-4"), g.Text("Still have questions?")),
		P(Class("text-lg text-blue-100 mb-8"), g.Text("Our team is happy to walk you through Stratus and help you pick the right plan.")),
		g.If(contactEmail != "",
			button(
				g.Group([]g.Node{icon("mail", "w-5 h-5"), Span(g.Text("Contact Sales"))}),
				withHref("mailto:"+contactEmail),
				withVariant(variantInverse),
				withSize(sizeLarge),
			),
		),
	)
}
