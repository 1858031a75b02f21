package slideshow

import (
	"image"
	"sync"
)

// A stagingSurface records what a source does to a surface so that the
// writes can be transformed or replayed later onto the real surface.
type stagingSurface struct {
	mu       sync.Mutex
	bounds   image.Rectangle
	img      image.Image
	overlays []Overlay
	ops      []func(Surface)
}

func newStagingSurface(target Surface) *stagingSurface {
	return &stagingSurface{
		bounds:   target.Bounds(),
		img:      target.Image(),
		overlays: target.Overlays(),
	}
}

func (ss *stagingSurface) SetImage(img image.Image) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.img = img
	// nil marks an image assignment; see replay.
	ss.ops = append(ss.ops, nil)
}

func (ss *stagingSurface) Image() image.Image {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.img
}

func (ss *stagingSurface) Bounds() image.Rectangle {
	return ss.bounds
}

func (ss *stagingSurface) AddOverlay(ov Overlay) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.overlays = append(ss.overlays, ov)
	ss.ops = append(ss.ops, func(s Surface) { s.AddOverlay(ov) })
}

func (ss *stagingSurface) Overlays() []Overlay {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	out := make([]Overlay, len(ss.overlays))
	copy(out, ss.overlays)
	return out
}

func (ss *stagingSurface) RemoveOverlays(kind OverlayKind) int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	kept := make([]Overlay, 0, len(ss.overlays))
	for _, ov := range ss.overlays {
		if ov.Kind() != kind {
			kept = append(kept, ov)
		}
	}
	removed := len(ss.overlays) - len(kept)
	ss.overlays = kept
	ss.ops = append(ss.ops, func(s Surface) { s.RemoveOverlays(kind) })
	return removed
}

// replay applies the recorded writes to target in order. Recorded image
// assignments are replayed with img, the image the load finally delivers.
func (ss *stagingSurface) replay(target Surface, img image.Image) {
	ss.mu.Lock()
	ops := ss.ops
	ss.mu.Unlock()
	for _, op := range ops {
		if op == nil {
			target.SetImage(img)
			continue
		}
		op(target)
	}
}
