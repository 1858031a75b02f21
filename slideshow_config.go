package slideshow

import (
	"image"

	"github.com/edaniels/golog"
)

// A Config describes how a Slideshow should be managed.
type Config struct {
	// Circular wraps Next past the last slide back to the first, and
	// Previous before the first to the last.
	Circular bool
	// OnLoad, if set, is called with the slide index and the image that was
	// assigned each time a slide finishes loading.
	OnLoad func(index int, img image.Image)
	Logger golog.Logger
}
