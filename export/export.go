// Package export writes the marketing pages as static HTML files.
package export

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	g "maragu.dev/gomponents"

	"github.com/stratus-hq/site/config"
	"github.com/stratus-hq/site/ui"
)

// File is one exported page.
type File struct {
	Name string
	Node g.Node
}

// Files lists the pages written by Pages, in write order.
func Files(cfg *config.Config) []File {
	assets := ui.Assets{
		StylesheetURL: cfg.TailwindCSSURL,
		HTMXURL:       cfg.HTMXURL,
	}
	return []File{
		{Name: "index.html", Node: ui.HomePage(assets)},
		{Name: "about.html", Node: ui.AboutPage(ui.AboutProps{Assets: assets})},
		{Name: "pricing.html", Node: ui.PricingPage(ui.PricingProps{
			ContactEmail: cfg.ContactEmail,
			Assets:       assets,
		})},
	}
}

// Pages renders every page into dir on fs, creating dir if needed. It returns
// the paths written.
func Pages(fs afero.Fs, dir string, cfg *config.Config) ([]string, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	files := Files(cfg)
	written := make([]string, 0, len(files))
	for _, f := range files {
		var buf bytes.Buffer
		if err := f.Node.Render(&buf); err != nil {
			return written, fmt.Errorf("render %s: %w", f.Name, err)
		}

		path := filepath.Join(dir, f.Name)
		if err := afero.WriteFile(fs, path, buf.Bytes(), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		log.Debug().Str("path", path).Int("bytes", buf.Len()).Msg("page exported")
		written = append(written, path)
	}
	return written, nil
}
