package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// ---- Page Layout ----

const siteName = "Stratus"

// Assets are the stylesheet and script URLs every page links to.
type Assets struct {
	StylesheetURL string
	HTMXURL       string
}

// DefaultAssets is used by pages whose props leave Assets empty.
var DefaultAssets = Assets{
	StylesheetURL: "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css",
	HTMXURL:       "https://unpkg.com/htmx.org@2.0.4",
}

func (a Assets) orDefault() Assets {
	if a.StylesheetURL == "" {
		a.StylesheetURL = DefaultAssets.StylesheetURL
	}
	if a.HTMXURL == "" {
		a.HTMXURL = DefaultAssets.HTMXURL
	}
	return a
}

func pageTitle(title string) string {
	if title != "" {
		return title + " - " + siteName
	}
	return siteName
}

// Page is the HTML document shell shared by every page.
func Page(title, description string, assets Assets, content []g.Node) g.Node {
	assets = assets.orDefault()
	return components.HTML5(components.HTML5Props{
		Title:       pageTitle(title),
		Description: description,
		Language:    "en",
		Head: []g.Node{
			Link(Rel("icon"), Type("image/png"), Href("/images/favicon-32x32.png"), g.Attr("sizes", "32x32")),
			Link(
				Rel("stylesheet"),
				Href(assets.StylesheetURL),
			),
			Script(
				Type("text/javascript"),
				Src(assets.HTMXURL),
				Defer(),
			),
		},
		Body: []g.Node{
			Class("bg-gray-50 text-gray-900 antialiased"),
			g.Group(content),
		},
	})
}

// navBar is the top bar with the brand on the left and extra nodes on the right.
func navBar(left g.Node, right ...g.Node) g.Node {
	return Nav(
		Class("bg-white border-b border-gray-200"),
		Div(
			Class("max-w-6xl mx-auto px-4 py-3 flex items-center justify-between"),
			Div(
				Class("flex items-center gap-4"),
				left,
				A(Href("/"), Class("text-xl font-bold text-gray-900"), g.Text(siteName)),
			),
			Div(Class("flex items-center gap-4"), g.Group(right)),
		),
	)
}

func section(class string, children ...g.Node) g.Node {
	return Section(
		Class(class),
		Div(Class("max-w-6xl mx-auto px-4"), g.Group(children)),
	)
}

func pageHeader(text string) g.Node {
	return H1(Class("text-4xl md:text-5xl font-bold mb-6"), g.Text(text))
}

func sectionHeader(title, subtitle string) g.Node {
	return Div(
		Class("text-center mb-12"),
		H2(Class("text-3xl font-bold text-gray-900 mb-4"), g.Text(title)),
		g.If(subtitle != "", P(Class("text-lg text-gray-600 max-w-2xl mx-auto"), g.Text(subtitle))),
	)
}
