package appicon

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/zhaodedao/appicon/imop"
)

const (
	// IconSize is the edge of the square canvas. The glyph geometry scales with it.
	IconSize = 1024
	// BlurSigma is the standard deviation of the Gaussian finish.
	BlurSigma = 2.0
)

// Colors of the icon.
var (
	TopColor    = color.NRGBA{R: 45, G: 149, B: 255, A: 0xff}
	BottomColor = color.NRGBA{R: 88, G: 86, B: 214, A: 0xff}
	GlyphColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Renderer options
type Renderer struct {
	Size       int
	Gradient   GradientSpec
	GlyphColor color.NRGBA
	BlurSigma  float64
}

// NewRenderer returns the renderer of the application icon.
func NewRenderer() *Renderer {
	return &Renderer{
		Size: IconSize,
		Gradient: GradientSpec{
			Top:    TopColor,
			Bottom: BottomColor,
		},
		GlyphColor: GlyphColor,
		BlurSigma:  BlurSigma,
	}
}

// Render draws the icon: the gradient background, the magnifying glass
// glyph on top of it and a Gaussian blur over the whole canvas.
func (r *Renderer) Render() *image.NRGBA {
	canvas := imaging.New(r.Size, r.Size, r.Gradient.Bottom)
	r.Gradient.Fill(canvas)

	layer := NewGlyphGeometry(r.Size).Draw(r.GlyphColor)
	op := imop.InitOp()
	op.Draw(&imop.Bitmap{Img: canvas}, layer, canvas)

	return imaging.Blur(canvas, r.BlurSigma)
}
