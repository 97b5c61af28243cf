package ui

import (
	"errors"
	"path"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// Event names a user-initiated event a page reports back to its host.
type Event string

const (
	EventBack       Event = "back"
	EventSelectPlan Event = "select-plan"
)

// Page route names used to build control targets.
const (
	PageAbout   = "about"
	PagePricing = "pricing"
)

// ErrUnknownEvent is returned by Dispatch for events the page does not expose.
var ErrUnknownEvent = errors.New("unknown event")

// ActionPath is the route a control for event on page posts to. The host mounts its
// action handlers under the same paths.
func ActionPath(page string, event Event, arg string) string {
	p := path.Join("/", page, "actions", string(event))
	if arg != "" {
		p = path.Join(p, arg)
	}
	return p
}

// control wraps a submit button in a form posting to the event's action route.
// data-event and data-arg identify the control independent of its styling.
func control(page string, event Event, arg string, label g.Node, options ...buttonOption) g.Node {
	options = append(options, withType("submit"))
	return Form(
		Method("post"),
		Action(ActionPath(page, event, arg)),
		hx.Boost("true"),
		Data("event", string(event)),
		g.If(arg != "", Data("arg", arg)),
		button(label, options...),
	)
}

// backControl is the "go back" control shared by both pages.
func backControl(page string) g.Node {
	return control(page, EventBack, "",
		g.Group([]g.Node{icon("arrow-left", "w-4 h-4"), Span(g.Text("Back"))}),
		withVariant(variantGhost),
		withSize(sizeSmall),
	)
}
