// Package slideshow provides interchangeable input sources that resolve an
// image from some origin (memory, an application bundle, or local storage) and
// deliver it to a display surface.
package slideshow

import (
	"context"
	"image"
)

// A Callback receives the image that was assigned to a surface. A nil image
// means the source could not resolve one.
type Callback func(img image.Image)

// An InputSource knows how to obtain an image from one specific origin and
// deliver it to a Surface. Load assigns the resolved image (or nil) to the
// surface and then calls the callback exactly once with the same value.
// Calling Load again re-resolves and re-assigns.
type InputSource interface {
	Load(ctx context.Context, surface Surface, cb Callback)
}

// A LoadCanceler is an InputSource that can abort an in-flight load for a
// surface. Sources that resolve synchronously do not implement it.
type LoadCanceler interface {
	CancelLoad(surface Surface)
}

// CancelLoad asks src to abort any in-flight load on the given surface. It
// reports whether src supports cancellation at all; sources without the
// capability are treated as a no-op.
func CancelLoad(src InputSource, surface Surface) bool {
	canceler, ok := src.(LoadCanceler)
	if !ok {
		return false
	}
	canceler.CancelLoad(surface)
	return true
}

// An InputSourceFunc is a helper to turn a resolver function into an
// InputSource. Resolution errors are absorbed and surface as a nil image.
type InputSourceFunc func(ctx context.Context) (image.Image, error)

// Load resolves the image via the function and assigns it to the surface.
func (isf InputSourceFunc) Load(ctx context.Context, surface Surface, cb Callback) {
	img, err := isf(ctx)
	if err != nil {
		Logger.Debugw("error resolving image", "error", err)
		img = nil
	}
	deliver(surface, img, cb)
}

// deliver assigns img to the surface and then fires the callback.
func deliver(surface Surface, img image.Image, cb Callback) {
	surface.SetImage(img)
	if cb != nil {
		cb(img)
	}
}
