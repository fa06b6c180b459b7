package appicon

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"github.com/zhaodedao/appicon/utils"
	"golang.org/x/image/math/fixed"
)

// handleOffset is the fraction of the ring bounding box where the handle starts.
const handleOffset = 0.7

// GlyphGeometry holds the magnifying glass measures derived from the canvas size.
type GlyphGeometry struct {
	Size      int
	Margin    int
	Diameter  int
	Thickness int

	// The handle runs diagonally from (HandleStart, HandleStart) to (HandleEnd, HandleEnd).
	HandleStart float64
	HandleEnd   float64
}

// NewGlyphGeometry computes the glyph measures for a size x size canvas.
func NewGlyphGeometry(size int) GlyphGeometry {
	margin := size / 4
	diameter := size / 2

	return GlyphGeometry{
		Size:        size,
		Margin:      margin,
		Diameter:    diameter,
		Thickness:   utils.Max(size/20, 1),
		HandleStart: float64(margin) + float64(diameter)*handleOffset,
		HandleEnd:   float64(size - margin),
	}
}

// Draw strokes the ring and the handle with the given color
// on a transparent layer of the canvas size.
func (g GlyphGeometry) Draw(c color.Color) *image.RGBA {
	layer := image.NewRGBA(image.Rect(0, 0, g.Size, g.Size))
	scanner := rasterx.NewScannerGV(g.Size, g.Size, layer, layer.Bounds())
	dasher := rasterx.NewDasher(g.Size, g.Size, scanner)
	dasher.SetColor(c)

	g.strokeRing(dasher)
	g.strokeHandle(dasher)

	return layer
}

// ringOverlap is how far each outline reaches inwards, in pixels, so that
// neighbouring outlines fully cover the pixels between them.
const ringOverlap = 2.0

// strokeRing draws Thickness concentric outlines, each one inset by one more
// pixel than the previous. Every outline keeps its one pixel outer edge and
// reaches inwards over its neighbours, down to the innermost outline.
func (g GlyphGeometry) strokeRing(d *rasterx.Dasher) {
	// The bounding box is inclusive on both ends, like a pixel range.
	c := float64(2*g.Margin+g.Diameter+1) / 2
	innerEdge := float64(g.Diameter)/2 - float64(g.Thickness-1) - 0.5

	for i := 0; i < g.Thickness; i++ {
		r := float64(g.Diameter)/2 - float64(i)
		if r < 0 {
			break
		}
		outer := r + 0.5
		inner := utils.Max(r-0.5-ringOverlap, utils.Max(innerEdge, 0))
		width := outer - inner

		d.SetStroke(fixed.Int26_6(width*64), fixed.I(4), rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter, nil, 0)
		rasterx.AddEllipse(c, c, (outer+inner)/2, (outer+inner)/2, 0, d)
		d.Draw()
		d.Clear()
	}
}

// strokeHandle draws Thickness wide segments towards the bottom right corner,
// the start of each one shifted diagonally by one more pixel.
func (g GlyphGeometry) strokeHandle(d *rasterx.Dasher) {
	d.SetStroke(fixed.I(g.Thickness), fixed.I(4), rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter, nil, 0)

	end := g.HandleEnd + 0.5
	for i := 0; i < g.Thickness; i++ {
		start := g.HandleStart + float64(i) + 0.5
		if start >= end {
			break
		}
		d.Start(toFixed(start, start))
		d.Line(toFixed(end, end))
		d.Stop(false)
		d.Draw()
		d.Clear()
	}
}

func toFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y * 64),
	}
}
