package handlers

import (
	"encoding/xml"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/stratus-hq/site/ui"
)

type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

func (s *Site) HandleSitemap(c *fiber.Ctx) error {
	lastMod := time.Now().UTC().Format("2006-01-02")
	entry := func(path, freq, priority string) SitemapURL {
		return SitemapURL{
			Loc:        s.cfg.BaseURL + path,
			LastMod:    lastMod,
			ChangeFreq: freq,
			Priority:   priority,
		}
	}

	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []SitemapURL{
			entry("/", "weekly", "1.0"),
			entry("/"+ui.PagePricing, "monthly", "0.9"),
			entry("/"+ui.PageAbout, "monthly", "0.7"),
		},
	}

	return c.XML(sitemap)
}
