package slideshow

import (
	"image"
	"image/draw"
	"testing"

	"go.viam.com/test"
)

type fakeOverlay struct {
	id   string
	kind OverlayKind
	draw func(dst draw.Image, bounds image.Rectangle)
}

func (fo *fakeOverlay) ID() string        { return fo.id }
func (fo *fakeOverlay) Kind() OverlayKind { return fo.kind }

func (fo *fakeOverlay) Draw(dst draw.Image, bounds image.Rectangle) {
	if fo.draw != nil {
		fo.draw(dst, bounds)
	}
}

func TestImageSurfaceOverlays(t *testing.T) {
	surface := NewImageSurface(10, 10)
	surface.AddOverlay(&fakeOverlay{id: "a", kind: OverlayCaption})
	surface.AddOverlay(&fakeOverlay{id: "b", kind: "badge"})
	surface.AddOverlay(&fakeOverlay{id: "c", kind: OverlayCaption})

	overlays := surface.Overlays()
	test.That(t, overlays, test.ShouldHaveLength, 3)
	overlays[0] = nil
	test.That(t, surface.Overlays()[0], test.ShouldNotBeNil)

	test.That(t, surface.RemoveOverlays(OverlayCaption), test.ShouldEqual, 2)
	overlays = surface.Overlays()
	test.That(t, overlays, test.ShouldHaveLength, 1)
	test.That(t, overlays[0].ID(), test.ShouldEqual, "b")
	test.That(t, surface.RemoveOverlays(OverlayCaption), test.ShouldEqual, 0)
}

func TestImageSurfaceRender(t *testing.T) {
	surface := NewImageSurface(40, 20)
	test.That(t, surface.Bounds(), test.ShouldResemble, image.Rect(0, 0, 40, 20))

	empty := surface.Render()
	test.That(t, empty.Bounds(), test.ShouldResemble, image.Rect(0, 0, 40, 20))
	test.That(t, colorAt(empty, 20, 10).A, test.ShouldEqual, uint8(0))

	// a 100x100 image is fit into 20x20 and centered.
	surface.SetImage(square(red, 100))
	out := surface.Render()
	test.That(t, colorAt(out, 20, 10), test.ShouldResemble, red)
	test.That(t, colorAt(out, 2, 10).A, test.ShouldEqual, uint8(0))
	test.That(t, colorAt(out, 37, 10).A, test.ShouldEqual, uint8(0))

	var drawnWith image.Rectangle
	surface.AddOverlay(&fakeOverlay{kind: "badge", draw: func(dst draw.Image, bounds image.Rectangle) {
		drawnWith = bounds
		dst.Set(0, 0, blue)
	}})
	out = surface.Render()
	test.That(t, drawnWith, test.ShouldResemble, surface.Bounds())
	test.That(t, colorAt(out, 0, 0), test.ShouldResemble, blue)
}
