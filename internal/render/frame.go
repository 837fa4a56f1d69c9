package render

import (
	"image"
	"image/color"

	"cavis/internal/core"

	"github.com/anthonynsimon/bild/transform"
)

// Frame rasterises cells into a new image with one pixel per cell.
func Frame(cells []uint8, size core.Size, palette []color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	if len(cells) != size.Area() {
		return img
	}
	fillPaletteRGBA(img.Pix, cells, palette)
	return img
}

// Upscale enlarges img by an integer factor with nearest-neighbour sampling so
// every cell stays a crisp square.
func Upscale(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	return transform.Resize(img, b.Dx()*factor, b.Dy()*factor, transform.NearestNeighbor)
}
