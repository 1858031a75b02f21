package slideshow

import (
	"context"
	"image"
)

// A BundleImageSource loads an image by name from a Bundle.
type BundleImageSource struct {
	bundle Bundle
	name   string
}

// NewBundleImageSource returns a source for the asset called name.
func NewBundleImageSource(b Bundle, name string) *BundleImageSource {
	return &BundleImageSource{bundle: b, name: name}
}

// Name returns the asset name.
func (bis *BundleImageSource) Name() string {
	return bis.name
}

// Load resolves the asset and assigns it to the surface. A missing asset
// leaves the surface without an image and calls back with nil.
func (bis *BundleImageSource) Load(ctx context.Context, surface Surface, cb Callback) {
	var img image.Image
	if resolved, err := bis.bundle.Image(bis.name); err != nil {
		Logger.Debugw("error loading bundle image", "name", bis.name, "error", err)
	} else {
		img = resolved
	}
	deliver(surface, img, cb)
}
