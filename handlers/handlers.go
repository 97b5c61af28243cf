package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/stratus-hq/site/cache"
	"github.com/stratus-hq/site/config"
	"github.com/stratus-hq/site/ui"
)

// renderCacheMaxCost bounds the rendered-page cache in bytes.
const renderCacheMaxCost = 8 << 20

// Site is the host application for the marketing pages. It owns the page
// callbacks and decides where each one navigates.
type Site struct {
	cfg      *config.Config
	pages    *cache.Cache[[]byte]
	validate *validator.Validate
	assets   ui.Assets
}

// New creates the handlers for cfg.
func New(cfg *config.Config) (*Site, error) {
	pages, err := cache.New("render", renderCacheMaxCost, cfg.RenderCacheTTL, func(b []byte) int64 {
		return int64(len(b))
	})
	if err != nil {
		return nil, fmt.Errorf("create render cache: %w", err)
	}

	validate, err := newValidator()
	if err != nil {
		pages.Close()
		return nil, err
	}

	return &Site{
		cfg:      cfg,
		pages:    pages,
		validate: validate,
		assets: ui.Assets{
			StylesheetURL: cfg.TailwindCSSURL,
			HTMXURL:       cfg.HTMXURL,
		},
	}, nil
}

// Close releases the render cache.
func (s *Site) Close() {
	s.pages.Close()
}
