package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const cardBaseClass = "bg-white rounded-xl border border-gray-200 shadow-sm"

// card is the bordered container used for plans, values and FAQ entries.
// A non-empty class replaces the default styling entirely.
func card(class string, children ...g.Node) g.Node {
	if class == "" {
		class = cardBaseClass
	}
	return Div(
		Class(class),
		g.Group(children),
	)
}

// badge renders a small rounded label.
func badge(text string, classes ...string) g.Node {
	class := "inline-flex items-center px-3 py-1 rounded-full text-xs font-semibold"
	if len(classes) == 0 {
		class += " bg-blue-100 text-blue-800"
	}
	for _, c := range classes {
		class += " " + c
	}
	return Span(Class(class), g.Text(text))
}
