package slideshow

import (
	"image"

	"github.com/nfnt/resize"
)

// Thumbnail scales img down to fit within maxWidth x maxHeight, preserving
// its aspect ratio. Images already small enough are returned unchanged.
func Thumbnail(img image.Image, maxWidth, maxHeight uint) image.Image {
	return resize.Thumbnail(maxWidth, maxHeight, img, resize.Lanczos3)
}
