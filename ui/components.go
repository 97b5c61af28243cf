package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HomePage links to the marketing pages. It is the default target of back controls.
func HomePage(assets Assets) g.Node {
	return Page(
		"",
		"Stratus is the all-in-one business management platform for growing teams.",
		assets,
		[]g.Node{
			navBar(nil,
				A(Href("/"+PageAbout), Class("text-gray-600 hover:text-gray-900"), g.Text("About")),
				A(Href("/"+PagePricing), Class("text-gray-600 hover:text-gray-900"), g.Text("Pricing")),
			),
			Main(
				section("py-24 text-center",
					pageHeader("Run your whole business from one place"),
					P(
						Class("text-xl text-gray-600 max-w-2xl mx-auto mb-10"),
						g.Text("Invoicing, inventory, payroll and customers, together in one simple workspace."),
					),
					Div(
						Class("flex justify-center gap-4"),
						button(g.Text("See Pricing"), withHref("/"+PagePricing), withSize(sizeLarge)),
						button(g.Text("About Us"), withHref("/"+PageAbout), withVariant(variantOutline), withSize(sizeLarge)),
					),
				),
			),
		},
	)
}

func ErrorPage(code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		"",
		Assets{},
		[]g.Node{
			navBar(nil),
			Main(
				section("py-24 text-center",
					pageHeader(fmt.Sprintf("Error %d", code)),
					P(Class("text-gray-600 mb-8"), g.Text(message)),
					button(g.Text("Back to Home"), withHref("/")),
				),
			),
		},
	)
}
