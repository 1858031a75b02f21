package slideshow

import (
	"context"
	"image"
)

// An ImageSource delivers an image already held in memory and draws a caption
// over it. The image is shared, never copied or mutated by Load.
type ImageSource struct {
	img        image.Image
	caption    string
	style      CaptionStyle
	accumulate bool
}

// An ImageSourceOption configures an ImageSource.
type ImageSourceOption func(is *ImageSource)

// WithCaptionStyle overrides the default caption styling and layout.
func WithCaptionStyle(style CaptionStyle) ImageSourceOption {
	return func(is *ImageSource) {
		is.style = style
	}
}

// WithAccumulatedCaptions keeps captions from earlier loads on the surface
// instead of replacing them, so every Load adds another caption overlay.
func WithAccumulatedCaptions() ImageSourceOption {
	return func(is *ImageSource) {
		is.accumulate = true
	}
}

// NewImageSource returns a source for img captioned with the given text. The
// caption may be empty.
func NewImageSource(img image.Image, caption string, opts ...ImageSourceOption) (*ImageSource, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	is := &ImageSource{
		img:     img,
		caption: caption,
		style:   DefaultCaptionStyle(),
	}
	for _, opt := range opts {
		opt(is)
	}
	return is, nil
}

// NewImageSourceFromBundle resolves name in the bundle up front and returns a
// source holding the decoded image. It fails with ErrImageNotFound when the
// name does not resolve.
//
// Deprecated: Use NewBundleImageSource instead.
func NewImageSourceFromBundle(b Bundle, name string) (*ImageSource, error) {
	img, err := b.Image(name)
	if err != nil {
		return nil, err
	}
	return NewImageSource(img, "")
}

// Image returns the held image.
func (is *ImageSource) Image() image.Image {
	return is.img
}

// Caption returns the caption text.
func (is *ImageSource) Caption() string {
	return is.caption
}

// Load assigns the held image to the surface, lays a caption over it and
// calls back with the image.
func (is *ImageSource) Load(ctx context.Context, surface Surface, cb Callback) {
	surface.SetImage(is.img)
	if !is.accumulate {
		surface.RemoveOverlays(OverlayCaption)
	}
	surface.AddOverlay(NewCaption(is.caption, is.style))
	if cb != nil {
		cb(is.img)
	}
}
