package appicon

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// GradientSpec describes a vertical two-color ramp.
type GradientSpec struct {
	Top    color.NRGBA
	Bottom color.NRGBA
}

// Row returns the color of row y of a gradient spanning height rows.
// The weight of the top color is 1 - y/height, quantized to 8 bits.
func (g GradientSpec) Row(y, height int) color.NRGBA {
	w := 255 * (height - y) / height

	return color.NRGBA{
		R: mix(g.Top.R, g.Bottom.R, w),
		G: mix(g.Top.G, g.Bottom.G, w),
		B: mix(g.Top.B, g.Bottom.B, w),
		A: 0xff,
	}
}

// Fill paints the gradient over the whole destination, one constant color per row.
func (g GradientSpec) Fill(dst draw.Image) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := image.Rect(b.Min.X, y, b.Max.X, y+1)
		draw.Draw(dst, row, image.NewUniform(g.Row(y-b.Min.Y, b.Dy())), image.Point{}, draw.Src)
	}
}

// mix blends two channel values, w being the weight of top in the [0, 255] range.
func mix(top, bottom uint8, w int) uint8 {
	return uint8((int(top)*w + int(bottom)*(255-w) + 127) / 255)
}
