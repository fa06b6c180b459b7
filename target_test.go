package appicon

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTarget_Path(t *testing.T) {
	assert := assert.New(t)
	target := NewOutputTarget("base")

	assert.Equal(filepath.Join("base", "找得到", "Assets.xcassets", "AppIcon.appiconset"), target.Dir())
	assert.Equal(filepath.Join(target.Dir(), "icon-1024@1x.png"), target.Path())
}

func TestTarget_WriteCreatesCatalog(t *testing.T) {
	base := t.TempDir()
	target := NewOutputTarget(base)

	_, err := os.Stat(filepath.Join(base, AppFolder))
	require.True(t, os.IsNotExist(err))

	src := newTestRenderer(64).Render()
	require.NoError(t, target.Write(src))

	info, err := os.Stat(target.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	f, err := os.Open(target.Path())
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
}

func TestTarget_WriteTwice(t *testing.T) {
	target := NewOutputTarget(t.TempDir())
	src := newTestRenderer(64).Render()

	require.NoError(t, target.Write(src))
	first, err := os.ReadFile(target.Path())
	require.NoError(t, err)

	require.NoError(t, target.Write(newTestRenderer(64).Render()))
	second, err := os.ReadFile(target.Path())
	require.NoError(t, err)

	assert.Equal(t, first, second, "unchanged constants should produce identical files")
}

func TestTarget_WriteOverwritesLargerFile(t *testing.T) {
	target := NewOutputTarget(t.TempDir())
	require.NoError(t, target.Ensure())
	require.NoError(t, os.WriteFile(target.Path(), make([]byte, 1<<20), 0o644))

	require.NoError(t, target.Write(newTestRenderer(16).Render()))

	f, err := os.Open(target.Path())
	require.NoError(t, err)
	defer f.Close()

	_, err = png.Decode(f)
	assert.NoError(t, err)
}

func TestTarget_EnsureIsIdempotent(t *testing.T) {
	target := NewOutputTarget(t.TempDir())

	assert.NoError(t, target.Ensure())
	assert.NoError(t, target.Ensure())
}

func TestTarget_DirectoryError(t *testing.T) {
	// A regular file where a directory is expected makes MkdirAll fail.
	base := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(base, []byte("x"), 0o644))

	err := NewOutputTarget(base).Write(image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "unable to create the icon directory"), err.Error())
}

func TestTarget_PermissionError(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}
	target := NewOutputTarget(t.TempDir())
	require.NoError(t, target.Ensure())
	require.NoError(t, os.Chmod(target.Dir(), 0o555))
	defer os.Chmod(target.Dir(), 0o755)

	err := target.Write(image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
}
