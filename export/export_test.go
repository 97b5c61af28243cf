package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratus-hq/site/config"
)

func TestPagesWritesEveryPage(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := config.Default()

	written, err := Pages(fs, "out/site", cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("out/site", "index.html"),
		filepath.Join("out/site", "about.html"),
		filepath.Join("out/site", "pricing.html"),
	}, written)

	titles := map[string]string{
		"index.html":   "Stratus",
		"about.html":   "About - Stratus",
		"pricing.html": "Pricing - Stratus",
	}
	for name, title := range titles {
		t.Run(name, func(t *testing.T) {
			b, err := afero.ReadFile(fs, filepath.Join("out/site", name))
			require.NoError(t, err)

			doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
			require.NoError(t, err)
			assert.Equal(t, title, doc.Find("title").Text())
		})
	}
}

func TestPagesMatchesRenderedNodes(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := config.Default()

	_, err := Pages(fs, "dist", cfg)
	require.NoError(t, err)

	for _, f := range Files(cfg) {
		var want bytes.Buffer
		require.NoError(t, f.Node.Render(&want))

		got, err := afero.ReadFile(fs, filepath.Join("dist", f.Name))
		require.NoError(t, err)
		assert.Equal(t, want.String(), string(got), f.Name)
	}
}

func TestPagesUsesContactEmail(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := config.Default()
	cfg.ContactEmail = "hello@example.org"

	_, err := Pages(fs, "dist", cfg)
	require.NoError(t, err)

	b, err := afero.ReadFile(fs, "dist/pricing.html")
	require.NoError(t, err)
	assert.Contains(t, string(b), "mailto:hello@example.org")
}

func TestPagesFailsOnReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	written, err := Pages(fs, "dist", config.Default())
	assert.Error(t, err)
	assert.Empty(t, written)
}
