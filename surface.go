package slideshow

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/disintegration/imaging"
)

// An OverlayKind groups overlays so that a source can find the ones it added.
type OverlayKind string

// OverlayCaption is the kind of the text caption drawn by ImageSource.
const OverlayCaption OverlayKind = "caption"

// An Overlay is a child view layered on top of a surface's image.
type Overlay interface {
	ID() string
	Kind() OverlayKind
	// Draw paints the overlay onto dst, laid out against the surface bounds.
	Draw(dst draw.Image, bounds image.Rectangle)
}

// A Surface presents one image and any number of overlays. Sources only write
// to a surface during Load and never retain it afterwards.
type Surface interface {
	SetImage(img image.Image)
	Image() image.Image
	Bounds() image.Rectangle
	AddOverlay(ov Overlay)
	Overlays() []Overlay
	// RemoveOverlays removes every overlay of the given kind and returns how
	// many were removed.
	RemoveOverlays(kind OverlayKind) int
}

// An ImageSurface is an in-memory Surface of a fixed size that can be
// rendered to a single image.
type ImageSurface struct {
	mu       sync.Mutex
	bounds   image.Rectangle
	img      image.Image
	overlays []Overlay
}

// NewImageSurface returns an empty surface of the given dimensions.
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{bounds: image.Rect(0, 0, width, height)}
}

// SetImage replaces the displayed image. A nil image clears it.
func (s *ImageSurface) SetImage(img image.Image) {
	s.mu.Lock()
	s.img = img
	s.mu.Unlock()
}

// Image returns the displayed image, if any.
func (s *ImageSurface) Image() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.img
}

// Bounds returns the surface geometry overlays are anchored against.
func (s *ImageSurface) Bounds() image.Rectangle {
	return s.bounds
}

// AddOverlay adds ov on top of every existing overlay.
func (s *ImageSurface) AddOverlay(ov Overlay) {
	s.mu.Lock()
	s.overlays = append(s.overlays, ov)
	s.mu.Unlock()
}

// Overlays returns a copy of the overlays in drawing order.
func (s *ImageSurface) Overlays() []Overlay {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Overlay, len(s.overlays))
	copy(out, s.overlays)
	return out
}

// RemoveOverlays removes all overlays of the given kind.
func (s *ImageSurface) RemoveOverlays(kind OverlayKind) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.overlays[:0]
	for _, ov := range s.overlays {
		if ov.Kind() != kind {
			kept = append(kept, ov)
		}
	}
	removed := len(s.overlays) - len(kept)
	for i := len(kept); i < len(s.overlays); i++ {
		s.overlays[i] = nil
	}
	s.overlays = kept
	return removed
}

// Render composites the surface into a new image. The displayed image is
// scaled down to fit (never up) and centered; overlays are drawn on top in
// the order they were added.
func (s *ImageSurface) Render() *image.NRGBA {
	s.mu.Lock()
	img := s.img
	overlays := make([]Overlay, len(s.overlays))
	copy(overlays, s.overlays)
	s.mu.Unlock()

	width, height := s.bounds.Dx(), s.bounds.Dy()
	dst := imaging.New(width, height, color.NRGBA{0, 0, 0, 0})
	if img != nil && !img.Bounds().Empty() {
		fitted := imaging.Fit(img, width, height, imaging.Lanczos)
		pt := image.Pt((width-fitted.Bounds().Dx())/2, (height-fitted.Bounds().Dy())/2)
		dst = imaging.Paste(dst, fitted, pt)
	}
	for _, ov := range overlays {
		ov.Draw(dst, dst.Bounds())
	}
	return dst
}
