package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Button Components ----

type buttonVariant int

const (
	variantPrimary buttonVariant = iota
	variantOutline
	variantGhost
	variantInverse
)

type buttonSize int

const (
	sizeMedium buttonSize = iota
	sizeSmall
	sizeLarge
)

// buttonOption represents configuration options for buttons
type buttonOption func(*buttonConfig)

type buttonConfig struct {
	variant    buttonVariant
	size       buttonSize
	href       string
	buttonType string
	class      string
	attributes []g.Node
}

func withVariant(v buttonVariant) buttonOption {
	return func(c *buttonConfig) {
		c.variant = v
	}
}

func withSize(s buttonSize) buttonOption {
	return func(c *buttonConfig) {
		c.size = s
	}
}

// withHref makes the button a link with the specified href
func withHref(href string) buttonOption {
	return func(c *buttonConfig) {
		c.href = href
	}
}

// withType sets the button type (button, submit, etc.)
func withType(buttonType string) buttonOption {
	return func(c *buttonConfig) {
		c.buttonType = buttonType
	}
}

// withClass adds additional CSS classes
func withClass(class string) buttonOption {
	return func(c *buttonConfig) {
		c.class = class
	}
}

// withAttributes adds additional g.Node attributes
func withAttributes(attrs ...g.Node) buttonOption {
	return func(c *buttonConfig) {
		c.attributes = append(c.attributes, attrs...)
	}
}

func (v buttonVariant) class() string {
	switch v {
	case variantOutline:
		return "border border-gray-300 text-gray-700 bg-white hover:bg-gray-50"
	case variantGhost:
		return "text-gray-600 hover:text-gray-900 hover:bg-gray-100"
	case variantInverse:
		return "bg-white text-blue-600 hover:bg-blue-50"
	default:
		return "bg-blue-600 text-white hover:bg-blue-700"
	}
}

func (s buttonSize) class() string {
	switch s {
	case sizeSmall:
		return "px-3 py-1.5 text-sm"
	case sizeLarge:
		return "px-8 py-3 text-lg"
	default:
		return "px-4 py-2"
	}
}

// button renders a <button>, or an <a> when withHref is given.
func button(content g.Node, options ...buttonOption) g.Node {
	config := &buttonConfig{}
	for _, option := range options {
		option(config)
	}

	class := "inline-flex items-center justify-center gap-2 rounded-lg font-medium transition-colors " +
		config.variant.class() + " " + config.size.class()
	if config.class != "" {
		class += " " + config.class
	}

	attrs := []g.Node{Class(class)}
	if config.href != "" {
		attrs = append([]g.Node{Href(config.href)}, attrs...)
		attrs = append(attrs, config.attributes...)
		return A(append(attrs, content)...)
	}

	buttonType := config.buttonType
	if buttonType == "" {
		buttonType = "button"
	}
	attrs = append(attrs, Type(buttonType))
	attrs = append(attrs, config.attributes...)
	return Button(append(attrs, content)...)
}
