package slideshow

import (
	"context"
	"image"
	"testing"
	"testing/fstest"

	"go.viam.com/test"
)

func TestResizeInputSource(t *testing.T) {
	inner, err := NewImageSource(square(red, 20), "resized")
	test.That(t, err, test.ShouldBeNil)
	src := ResizeInputSource{Src: inner, Width: 10}
	surface := NewImageSurface(50, 50)

	var rec recorder
	src.Load(context.Background(), surface, rec.callback)
	test.That(t, rec.calls, test.ShouldEqual, 1)
	test.That(t, rec.img.Bounds(), test.ShouldResemble, image.Rect(0, 0, 10, 10))
	test.That(t, surface.Image(), test.ShouldEqual, rec.img)
	// overlays added by the wrapped source still reach the surface.
	test.That(t, surface.Overlays(), test.ShouldHaveLength, 1)
}

func TestRotateInputSource(t *testing.T) {
	wide := image.NewNRGBA(image.Rect(0, 0, 6, 2))
	wide.Set(0, 0, red)
	bundle := NewFSBundle(fstest.MapFS{
		"wide.png": &fstest.MapFile{Data: encodePNG(t, wide)},
	})
	src := &RotateInputSource{Src: NewBundleImageSource(bundle, "wide"), RotateByDeg: 90}
	surface := NewImageSurface(50, 50)

	var rec recorder
	src.Load(context.Background(), surface, rec.callback)
	test.That(t, rec.calls, test.ShouldEqual, 1)
	test.That(t, rec.img.Bounds().Dx(), test.ShouldEqual, 2)
	test.That(t, rec.img.Bounds().Dy(), test.ShouldEqual, 6)
	test.That(t, surface.Image(), test.ShouldEqual, rec.img)
}

func TestTransformMissingImage(t *testing.T) {
	src := &RotateInputSource{Src: NewFileImageSource("missing.png"), RotateByDeg: 180}
	surface := NewImageSurface(10, 10)
	surface.SetImage(square(blue, 2))

	var rec recorder
	src.Load(context.Background(), surface, rec.callback)
	test.That(t, rec.calls, test.ShouldEqual, 1)
	test.That(t, rec.img, test.ShouldBeNil)
	test.That(t, surface.Image(), test.ShouldBeNil)
}
