package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhaodedao/appicon"
)

func TestRun_CleanCheckout(t *testing.T) {
	base := t.TempDir()

	var out bytes.Buffer
	path, err := run(base, &out, nil)
	require.NoError(t, err)

	want := filepath.Join(base, appicon.AppFolder, appicon.CatalogFolder, appicon.IconSetFolder, appicon.IconFileName)
	assert.Equal(t, want, path)
	assert.Equal(t, "Icon saved to: "+want+"\n", out.String())
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out.String()), "icon-1024@1x.png"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, appicon.IconSize, cfg.Width)
	assert.Equal(t, appicon.IconSize, cfg.Height)
}

func TestRun_Twice(t *testing.T) {
	base := t.TempDir()

	path, err := run(base, &bytes.Buffer{}, nil)
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = run(base, &bytes.Buffer{}, nil)
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second), "consecutive runs should write identical files")
}

func TestRun_WriteError(t *testing.T) {
	base := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(base, nil, 0o644))

	var out bytes.Buffer
	_, err := run(base, &out, nil)
	assert.Error(t, err)
	assert.Empty(t, out.String(), "nothing is reported on failure")
}

func TestHelpBanner_NamesWorkingDirectory(t *testing.T) {
	banner := fmt.Sprintf(HelpBanner, "test")

	assert.Contains(t, banner, "repository root")
	assert.Contains(t, banner, filepath.ToSlash(filepath.Join(appicon.AppFolder, appicon.CatalogFolder, appicon.IconSetFolder, appicon.IconFileName)))
}
