package slideshow

import (
	"context"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// transformLoad loads src into a staging surface, applies fn to the resolved
// image, and replays the result onto surface. src must call back before Load
// returns; wrap the transform in an AsyncInputSource rather than the reverse.
func transformLoad(
	ctx context.Context, src InputSource, surface Surface, cb Callback, fn func(image.Image) image.Image,
) {
	staged := newStagingSurface(surface)
	var resolved image.Image
	src.Load(ctx, staged, func(img image.Image) {
		resolved = img
	})
	if resolved != nil {
		resolved = fn(resolved)
	}
	staged.replay(surface, resolved)
	if cb != nil {
		cb(resolved)
	}
}

// RotateInputSource rotates images by a set amount of degrees.
type RotateInputSource struct {
	Src         InputSource
	RotateByDeg float64
}

// Load delivers the image of Src rotated counter-clockwise by RotateByDeg.
func (ris *RotateInputSource) Load(ctx context.Context, surface Surface, cb Callback) {
	transformLoad(ctx, ris.Src, surface, cb, func(img image.Image) image.Image {
		return imaging.Rotate(img, ris.RotateByDeg, color.Black)
	})
}

// ResizeInputSource resizes images to the set dimensions. A zero Width or
// Height preserves the aspect ratio.
type ResizeInputSource struct {
	Src           InputSource
	Width, Height int
}

// Load delivers the image of Src resized to Width x Height.
func (ris ResizeInputSource) Load(ctx context.Context, surface Surface, cb Callback) {
	transformLoad(ctx, ris.Src, surface, cb, func(img image.Image) image.Image {
		return imaging.Resize(img, ris.Width, ris.Height, imaging.Lanczos)
	})
}
