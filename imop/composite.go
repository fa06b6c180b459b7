// Package imop implements the Porter-Duff composition operations
// used for mixing a graphic element with its backdrop.
//
// It is used to lay the glyph layer of the icon over the gradient background.
// The arithmetic works on the 16-bit premultiplied values returned by
// color.Color.RGBA, so the result does not depend on floating point rounding.
package imop

import (
	"fmt"
	"image"
	"image/color"

	"github.com/zhaodedao/appicon/utils"
)

const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
)

const maxValue = 0xffff

// Bitmap holds the destination of a composition.
type Bitmap struct {
	Img *image.NRGBA
}

// Composite holds the currently active composition operation.
type Composite struct {
	current string
	ops     []string
}

// NewBitmap returns a transparent bitmap of the given size.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// InitOp initializes a new composition with source-over as the active operation.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops: []string{
			Copy,
			SrcOver,
			DstOver,
		},
	}
}

// Set activates one of the supported composition operations.
func (op *Composite) Set(cop string) error {
	if !utils.Contains(op.ops, cop) {
		return fmt.Errorf("unsupported composite operation: %q", cop)
	}
	op.current = cop
	return nil
}

// Get returns the currently active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// Draw composes src over dst and stores the result into the bitmap.
// The bitmap may share its image with dst. Pixels outside of the
// intersection of the three rectangles are left untouched.
func (op *Composite) Draw(bitmap *Bitmap, src image.Image, dst *image.NRGBA) {
	if bitmap == nil {
		bitmap = NewBitmap(dst.Bounds())
	}
	rect := bitmap.Img.Bounds().Intersect(src.Bounds()).Intersect(dst.Bounds())

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			rs, gs, bs, as := src.At(x, y).RGBA()
			rb, gb, bb, ab := dst.At(x, y).RGBA()

			var r, g, b, a uint32
			switch op.current {
			case Copy:
				r, g, b, a = rs, gs, bs, as
			case SrcOver:
				r = rs + rb*(maxValue-as)/maxValue
				g = gs + gb*(maxValue-as)/maxValue
				b = bs + bb*(maxValue-as)/maxValue
				a = as + ab*(maxValue-as)/maxValue
			case DstOver:
				r = rb + rs*(maxValue-ab)/maxValue
				g = gb + gs*(maxValue-ab)/maxValue
				b = bb + bs*(maxValue-ab)/maxValue
				a = ab + as*(maxValue-ab)/maxValue
			}

			bitmap.Img.Set(x, y, color.RGBA64{
				R: uint16(utils.Min(r, maxValue)),
				G: uint16(utils.Min(g, maxValue)),
				B: uint16(utils.Min(b, maxValue)),
				A: uint16(utils.Min(a, maxValue)),
			})
		}
	}
}
