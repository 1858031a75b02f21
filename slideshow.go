package slideshow

import (
	"context"
	"image"
	"sync"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
)

var (
	// ErrNoSlides is returned when navigating a slideshow without inputs.
	ErrNoSlides = errors.New("slideshow has no slides")
	// ErrSlideOutOfRange is returned for an index outside the slideshow.
	ErrSlideOutOfRange = errors.New("slide index out of range")
)

// A Slideshow presents one InputSource per slide on a single surface.
type Slideshow struct {
	mu      sync.Mutex
	surface Surface
	cfg     Config
	logger  golog.Logger
	inputs  []InputSource
	current int

	// generation counts activations so late callbacks of replaced loads can
	// be told apart from the current one.
	generation uint64
}

// NewSlideshow returns a slideshow drawing onto surface.
func NewSlideshow(surface Surface, cfg Config) *Slideshow {
	logger := cfg.Logger
	if logger == nil {
		logger = Logger
	}
	return &Slideshow{
		surface: surface,
		cfg:     cfg,
		logger:  logger,
	}
}

// SetInputs replaces the slides and loads the first one, if any.
func (s *Slideshow) SetInputs(ctx context.Context, inputs []InputSource) {
	s.mu.Lock()
	prev := s.currentSource()
	s.inputs = append([]InputSource(nil), inputs...)
	s.current = 0
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	if prev != nil {
		CancelLoad(prev, s.surface)
	}
	if len(inputs) == 0 {
		s.clearSurface()
		return
	}
	s.activate(ctx, 0, gen, inputs[0])
}

// Count returns the number of slides.
func (s *Slideshow) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inputs)
}

// Current returns the index of the visible slide.
func (s *Slideshow) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetCurrent makes slide i visible and loads it.
func (s *Slideshow) SetCurrent(ctx context.Context, i int) error {
	s.mu.Lock()
	if len(s.inputs) == 0 {
		s.mu.Unlock()
		return ErrNoSlides
	}
	if i < 0 || i >= len(s.inputs) {
		n := len(s.inputs)
		s.mu.Unlock()
		return errors.Wrapf(ErrSlideOutOfRange, "%d not in [0, %d)", i, n)
	}
	prev := s.currentSource()
	src := s.inputs[i]
	s.current = i
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	CancelLoad(prev, s.surface)
	s.activate(ctx, i, gen, src)
	return nil
}

// Next moves to the following slide. Without Circular it stays on the last
// slide.
func (s *Slideshow) Next(ctx context.Context) error {
	return s.step(ctx, 1)
}

// Previous moves to the preceding slide. Without Circular it stays on the
// first slide.
func (s *Slideshow) Previous(ctx context.Context) error {
	return s.step(ctx, -1)
}

func (s *Slideshow) step(ctx context.Context, delta int) error {
	s.mu.Lock()
	n := len(s.inputs)
	if n == 0 {
		s.mu.Unlock()
		return ErrNoSlides
	}
	next := s.current + delta
	if s.cfg.Circular {
		next = ((next % n) + n) % n
	} else if next < 0 || next >= n {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()
	return s.SetCurrent(ctx, next)
}

func (s *Slideshow) currentSource() InputSource {
	if s.current < 0 || s.current >= len(s.inputs) {
		return nil
	}
	return s.inputs[s.current]
}

func (s *Slideshow) clearSurface() {
	s.surface.SetImage(nil)
	s.surface.RemoveOverlays(OverlayCaption)
}

func (s *Slideshow) activate(ctx context.Context, i int, gen uint64, src InputSource) {
	s.clearSurface()
	src.Load(ctx, s.surface, func(img image.Image) {
		s.mu.Lock()
		stale := s.generation != gen
		s.mu.Unlock()
		if stale {
			s.logger.Debugw("dropping load of replaced slide", "index", i)
			return
		}
		if img == nil {
			s.logger.Debugw("slide has no image", "index", i)
		}
		if s.cfg.OnLoad != nil {
			s.cfg.OnLoad(i, img)
		}
	})
}
