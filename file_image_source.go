package slideshow

import (
	"context"
	"image"

	"github.com/disintegration/imaging"
)

// A FileImageSource loads an image from a path on local storage.
type FileImageSource struct {
	path string
}

// NewFileImageSource returns a source for the image file at path.
func NewFileImageSource(path string) *FileImageSource {
	return &FileImageSource{path: path}
}

// Path returns the file path.
func (fis *FileImageSource) Path() string {
	return fis.path
}

// Load reads and decodes the file, honoring any EXIF orientation, and assigns
// the result to the surface. A missing, unreadable or undecodable file leaves
// the surface without an image and calls back with nil.
func (fis *FileImageSource) Load(ctx context.Context, surface Surface, cb Callback) {
	var img image.Image
	if decoded, err := imaging.Open(fis.path, imaging.AutoOrientation(true)); err != nil {
		Logger.Debugw("error loading image file", "path", fis.path, "error", newImageNotFoundError(fis.path, err))
	} else {
		img = decoded
	}
	deliver(surface, img, cb)
}
