package slideshow

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

func TestFileImageSource(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "red.png", square(red, 6))

	src := NewFileImageSource(path)
	test.That(t, src.Path(), test.ShouldEqual, path)

	surface := NewImageSurface(20, 20)
	var rec recorder
	src.Load(context.Background(), surface, rec.callback)
	test.That(t, rec.calls, test.ShouldEqual, 1)
	test.That(t, rec.img, test.ShouldNotBeNil)
	test.That(t, rec.img.Bounds().Dx(), test.ShouldEqual, 6)
	test.That(t, surface.Image(), test.ShouldEqual, rec.img)
	test.That(t, colorAt(rec.img, 3, 3), test.ShouldResemble, red)
}

func TestFileImageSourceFailures(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	test.That(t, os.WriteFile(garbage, []byte("definitely not a png"), 0o600), test.ShouldBeNil)

	for _, tc := range []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing.png")},
		{"undecodable", garbage},
		{"directory", dir},
	} {
		t.Run(tc.name, func(t *testing.T) {
			surface := NewImageSurface(20, 20)
			surface.SetImage(square(blue, 2))

			var rec recorder
			NewFileImageSource(tc.path).Load(context.Background(), surface, rec.callback)
			test.That(t, rec.calls, test.ShouldEqual, 1)
			test.That(t, rec.img, test.ShouldBeNil)
			test.That(t, surface.Image(), test.ShouldBeNil)
		})
	}
}

func TestFileImageSourceIdempotent(t *testing.T) {
	path := writePNG(t, t.TempDir(), "blue.png", square(blue, 10))
	src := NewFileImageSource(path)
	surface := NewImageSurface(30, 30)

	src.Load(context.Background(), surface, nil)
	first := surface.Render()
	src.Load(context.Background(), surface, nil)
	second := surface.Render()
	test.That(t, second.Pix, test.ShouldResemble, first.Pix)
}
