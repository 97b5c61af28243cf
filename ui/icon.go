package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Icon Components ----

// iconPaths holds 24x24 stroke outlines keyed by icon name.
var iconPaths = map[string][]string{
	"arrow-left": {"M19 12H5", "M12 19l-7-7 7-7"},
	"check":      {"M20 6L9 17l-5-5"},
	"x":          {"M18 6L6 18", "M6 6l12 12"},
	"zap":        {"M13 2L3 14h9l-1 8 10-12h-9l1-8z"},
	"star":       {"M12 2l3.09 6.26L22 9.27l-5 4.87 1.18 6.88L12 17.77l-6.18 3.25L7 14.14 2 9.27l6.91-1.01L12 2z"},
	"crown":      {"M2 18h20", "M3 8l4 6 5-8 5 8 4-6-2 10H5L3 8z"},
	"users":      {"M17 21v-2a4 4 0 0 0-4-4H5a4 4 0 0 0-4 4v2", "M9 11a4 4 0 1 0 0-8 4 4 0 0 0 0 8z", "M23 21v-2a4 4 0 0 0-3-3.87", "M16 3.13a4 4 0 0 1 0 7.75"},
	"target":     {"M12 22a10 10 0 1 0 0-20 10 10 0 0 0 0 20z", "M12 18a6 6 0 1 0 0-12 6 6 0 0 0 0 12z", "M12 14a2 2 0 1 0 0-4 2 2 0 0 0 0 4z"},
	"shield":     {"M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z"},
	"heart":      {"M20.84 4.61a5.5 5.5 0 0 0-7.78 0L12 5.67l-1.06-1.06a5.5 5.5 0 0 0-7.78 7.78L12 21.23l8.84-8.84a5.5 5.5 0 0 0 0-7.78z"},
	"building":   {"M3 21h18", "M5 21V5a2 2 0 0 1 2-2h10a2 2 0 0 1 2 2v16", "M9 7h1", "M14 7h1", "M9 11h1", "M14 11h1", "M10 21v-4h4v4"},
	"mail":       {"M4 4h16a2 2 0 0 1 2 2v12a2 2 0 0 1-2 2H4a2 2 0 0 1-2-2V6a2 2 0 0 1 2-2z", "M22 6l-10 7L2 6"},
}

// icon renders a named inline SVG. Unknown names render nothing.
func icon(name string, classes ...string) g.Node {
	paths, ok := iconPaths[name]
	if !ok {
		return nil
	}

	class := "w-6 h-6 inline align-middle"
	for _, c := range classes {
		class += " " + c
	}

	children := []g.Node{
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		Class(class),
	}
	for _, d := range paths {
		children = append(children, g.El("path", g.Attr("d", d)))
	}
	return g.El("svg", children...)
}

// iconBadge places an icon on a tinted rounded square, as used in card headers.
func iconBadge(name, color string) g.Node {
	tint := colorTint(color)
	return Div(
		Class("w-12 h-12 rounded-lg flex items-center justify-center "+tint),
		icon(name),
	)
}

// colorTint maps a plan or value color token to background and text classes.
func colorTint(color string) string {
	switch color {
	case "purple":
		return "bg-purple-100 text-purple-600"
	case "amber":
		return "bg-yellow-100 text-yellow-600"
	case "green":
		return "bg-green-100 text-green-600"
	default:
		return "bg-blue-100 text-blue-600"
	}
}
