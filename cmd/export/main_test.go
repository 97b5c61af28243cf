package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	fs := afero.NewMemMapFs()

	cmd := newRootCmd(fs)
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--out", "public"})

	require.NoError(t, cmd.Execute())

	lines := strings.Fields(stdout.String())
	assert.Equal(t, []string{
		filepath.Join("public", "index.html"),
		filepath.Join("public", "about.html"),
		filepath.Join("public", "pricing.html"),
	}, lines)

	for _, name := range []string{"index.html", "about.html", "pricing.html"} {
		ok, err := afero.Exists(fs, filepath.Join("public", name))
		require.NoError(t, err)
		assert.True(t, ok, name)
	}
}

func TestExportCommandRejectsArgs(t *testing.T) {
	cmd := newRootCmd(afero.NewMemMapFs())
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}

func TestExportCommandRejectsInvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SITE_RATE_LIMIT_MAX", "0")

	fs := afero.NewMemMapFs()
	cmd := newRootCmd(fs)
	cmd.SetArgs([]string{"--out", "public"})

	assert.Error(t, cmd.Execute())
	ok, err := afero.DirExists(fs, "public")
	require.NoError(t, err)
	assert.False(t, ok)
}
