package appicon

import (
	"errors"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
)

// encodeImg encodes an image to a destination of type io.Writer.
// Files must carry the .png extension, any other writer receives PNG data.
func encodeImg(w io.Writer, img image.Image) error {
	switch w := w.(type) {
	case *os.File:
		format, err := imaging.FormatFromFilename(w.Name())
		if err != nil || format != imaging.PNG {
			return errors.New("unsupported image format")
		}
		return imaging.Encode(w, img, imaging.PNG)
	default:
		return imaging.Encode(w, img, imaging.PNG)
	}
}
