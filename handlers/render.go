package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	g "maragu.dev/gomponents"
)

// render sets the content type to HTML and renders the component.
func render(c *fiber.Ctx, component g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Response().BodyWriter())
}

// renderCached serves a page from the render cache, rendering it on a miss.
// Only pages whose output does not depend on the request may use it.
func (s *Site) renderCached(c *fiber.Ctx, key string, build func() g.Node) error {
	body, err := s.pages.GetOrCompute(key, func() ([]byte, error) {
		var buf bytes.Buffer
		if err := build().Render(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return err
	}
	writeHTML(c.Response(), body)
	return nil
}

// writeHTML hands body to the response without copying. Cached bodies are
// never modified after they are stored.
func writeHTML(resp *fasthttp.Response, body []byte) {
	resp.Header.SetContentType(fiber.MIMETextHTMLCharsetUTF8)
	resp.SetBodyRaw(body)
}
