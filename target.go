package appicon

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
)

// Layout of the asset catalog the icon is written into.
const (
	AppFolder     = "找得到"
	CatalogFolder = "Assets.xcassets"
	IconSetFolder = "AppIcon.appiconset"
	IconFileName  = "icon-1024@1x.png"
)

const dirPerm = os.FileMode(0o755)

// OutputTarget locates the icon file inside the app asset catalog.
type OutputTarget struct {
	BaseDir string
}

// NewOutputTarget returns the target rooted at baseDir.
func NewOutputTarget(baseDir string) OutputTarget {
	return OutputTarget{BaseDir: baseDir}
}

// Dir returns the icon set directory.
func (t OutputTarget) Dir() string {
	return filepath.Join(t.BaseDir, AppFolder, CatalogFolder, IconSetFolder)
}

// Path returns the icon file path.
func (t OutputTarget) Path() string {
	return filepath.Join(t.Dir(), IconFileName)
}

// Ensure creates the icon set directory and its parents if they are missing.
func (t OutputTarget) Ensure() error {
	return os.MkdirAll(t.Dir(), dirPerm)
}

// Write encodes the image as PNG into the target file, replacing any previous icon.
func (t OutputTarget) Write(img image.Image) (err error) {
	if err := t.Ensure(); err != nil {
		return fmt.Errorf("unable to create the icon directory: %w", err)
	}

	f, err := os.Create(t.Path())
	if err != nil {
		return fmt.Errorf("unable to create the icon file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close the icon file: %w", cerr)
		}
	}()

	if err := encodeImg(f, img); err != nil {
		return fmt.Errorf("unable to encode the icon: %w", err)
	}
	return nil
}
