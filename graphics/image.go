package graphics

import (
	"image"
	"io"

	// Decoders for image.Decode
	_ "image/jpeg"
	_ "image/png"

	"github.com/cockroachdb/errors"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Image is an RGBA image that can be uploaded as a texture
type Image struct {
	Pixels *image.RGBA
}

// NewImage converts src to RGBA, with its top left corner moved to the origin
func NewImage(src image.Image) Image {
	bounds := src.Bounds()
	pixels := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(pixels, pixels.Bounds(), src, bounds.Min, xdraw.Src)

	return Image{Pixels: pixels}
}

// DecodeImage reads a PNG, JPEG, BMP or WebP image from r
func DecodeImage(r io.Reader) (Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return Image{}, errors.Wrap(err, "could not decode image")
	}

	if src.Bounds().Empty() {
		return Image{}, errors.Newf("decoded %s image is empty", format)
	}

	return NewImage(src), nil
}

func (i Image) Width() int {
	return i.Pixels.Bounds().Dx()
}

func (i Image) Height() int {
	return i.Pixels.Bounds().Dy()
}

// MipChain returns the image followed by successively halved copies, down to a 1x1 level. Each level
// is filtered bilinearly from the level before it.
func (i Image) MipChain() []*image.RGBA {
	levels := []*image.RGBA{i.Pixels}

	width, height := i.Width(), i.Height()
	for width > 1 || height > 1 {
		width = halve(width)
		height = halve(height)

		prev := levels[len(levels)-1]
		level := image.NewRGBA(image.Rect(0, 0, width, height))
		xdraw.BiLinear.Scale(level, level.Bounds(), prev, prev.Bounds(), xdraw.Src, nil)
		levels = append(levels, level)
	}

	return levels
}

func halve(size int) int {
	if size <= 1 {
		return 1
	}

	return size / 2
}
