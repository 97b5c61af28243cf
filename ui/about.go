package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/stratus-hq/site/about"
)

// AboutProps are the inputs of the About page.
type AboutProps struct {
	// OnBack is called when the back control is activated.
	OnBack func()
	Assets Assets
}

// Dispatch reports an activated control to the matching callback.
// A nil callback is a no-op.
func (p AboutProps) Dispatch(event Event, arg string) error {
	switch event {
	case EventBack:
		if p.OnBack != nil {
			p.OnBack()
		}
		return nil
	default:
		return fmt.Errorf("%w: %q on %s page", ErrUnknownEvent, event, PageAbout)
	}
}

func AboutPage(p AboutProps) g.Node {
	return Page(
		"About",
		"Stratus helps small and mid-sized businesses run invoicing, inventory, payroll and customers from one place.",
		p.Assets,
		[]g.Node{
			navBar(backControl(PageAbout)),
			Main(
				aboutHero(),
				aboutStory(),
				aboutValues(),
				aboutStats(),
				aboutCTA(),
			),
		},
	)
}

func aboutHero() g.Node {
	return section("py-20 bg-gradient-to-br from-blue-50 to-indigo-100 text-center",
		badge("About Us"),
		Div(Class("mt-6"), pageHeader("Built for the people who run businesses")),
		P(
			Class("text-xl text-gray-600 max-w-3xl mx-auto"),
			g.Text("Stratus brings invoicing, inventory, payroll and customer management together so owners can spend less time on paperwork and more time on their work."),
		),
	)
}

func aboutStory() g.Node {
	return section("py-16 bg-white",
		Div(
			Class("max-w-3xl mx-auto"),
			H2(Class("text-3xl font-bold mb-6"), g.Text("Our Story")),
			P(Class("text-gray-600 mb-4 leading-relaxed"),
				g.Text("Stratus started in 2019 when our founders, after years of helping family businesses untangle spreadsheets, decided the tools themselves had to change."),
			),
			P(Class("text-gray-600 mb-4 leading-relaxed"),
				g.Text("We set out to build one system that covers the daily work of a business without the cost and complexity of enterprise software."),
			),
			P(Class("text-gray-600 leading-relaxed"),
				g.Text("Today teams in more than 30 countries use Stratus to send invoices, track stock, pay staff and stay close to their customers."),
			),
		),
	)
}

func aboutValues() g.Node {
	return section("py-16",
		sectionHeader("Our Values", "The principles behind every decision we make."),
		Div(
			Class("grid md:grid-cols-2 lg:grid-cols-4 gap-6"),
			g.Map(about.Values(), valueCard),
		),
	)
}

func valueCard(v about.Value) g.Node {
	return card("",
		Data("value-card", ""),
		Div(
			Class("p-6 text-center"),
			Div(Class("flex justify-center mb-4"), iconBadge(v.Icon, "blue")),
			H3(Class("text-lg font-semibold mb-2"), g.Text(v.Title)),
			P(Class("text-gray-600 text-sm"), g.Text(v.Description)),
		),
	)
}

func aboutStats() g.Node {
	return section("py-16 bg-blue-600 text-white",
		Div(
			Class("grid md:grid-cols-3 gap-8 text-center"),
			g.Map(about.Stats(), func(s about.Stat) g.Node {
				return Div(
					Data("stat", ""),
					Div(Class("text-4xl font-bold mb-2"), g.Text(s.Value)),
					Div(Class("text-blue-100"), g.Text(s.Label)),
				)
			}),
		),
	)
}

func aboutCTA() g.Node {
	return section("py-20 bg-white text-center",
		H2(Class("text-3xl font-bold mb-4"), g.Text("Ready to simplify your business?")),
		P(Class("text-lg text-gray-600 mb-8"), g.Text("Start a free trial today. No credit card required.")),
		button(g.Text("View Pricing"), withHref("/"+PagePricing), withSize(sizeLarge)),
	)
}
