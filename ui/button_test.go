package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func TestButton(t *testing.T) {
	tests := []struct {
		name     string
		node     g.Node
		contains []string
	}{
		{
			name:     "default is a primary button",
			node:     button(g.Text("Go")),
			contains: []string{"<button", `type="button"`, "bg-blue-600", "px-4 py-2", ">Go</button>"},
		},
		{
			name:     "href renders a link",
			node:     button(g.Text("Docs"), withHref("/docs")),
			contains: []string{`<a href="/docs"`, ">Docs</a>"},
		},
		{
			name:     "variant and size",
			node:     button(g.Text("Go"), withVariant(variantOutline), withSize(sizeLarge)),
			contains: []string{"border-gray-300", "px-8 py-3 text-lg"},
		},
		{
			name:     "extra class and attributes",
			node:     button(g.Text("Go"), withClass("w-full"), withType("submit"), withAttributes(ID("go"))),
			contains: []string{"w-full", `type="submit"`, `id="go"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := renderString(t, tt.node)
			for _, want := range tt.contains {
				assert.Contains(t, html, want)
			}
		})
	}
}

func TestCardAndBadge(t *testing.T) {
	assert.Contains(t, renderString(t, card("")), cardBaseClass)
	assert.Equal(t, `<div class="p-2"></div>`, renderString(t, card("p-2")))

	assert.Contains(t, renderString(t, badge("New")), "bg-blue-100")
	plain := renderString(t, badge("Hot", "bg-red-600"))
	assert.Contains(t, plain, "bg-red-600")
	assert.NotContains(t, plain, "bg-blue-100")
}

func TestIcon(t *testing.T) {
	html := renderString(t, icon("check", "w-4"))
	assert.Contains(t, html, "<svg")
	assert.Contains(t, html, `d="M20 6L9 17l-5-5"`)
	assert.Contains(t, html, "w-4")

	assert.Nil(t, icon("no-such-icon"))
}
