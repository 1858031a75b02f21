package slideshow

import (
	"context"
	"fmt"
	"image"
	"reflect"
	"sync"

	"github.com/edaniels/golog"
	"go.viam.com/utils"
)

// A Dispatcher runs f on whatever context owns the display surface, such as
// a UI event loop.
type Dispatcher func(f func())

// An AsyncInputSource resolves another source in the background and hands
// the result back through a Dispatcher. In-flight loads are tracked per
// surface; loads on a surface whose type is not comparable still complete
// but cannot be canceled or superseded.
type AsyncInputSource struct {
	src      InputSource
	dispatch Dispatcher
	logger   golog.Logger

	mu       sync.Mutex
	inflight map[Surface]*asyncLoad
}

type asyncLoad struct {
	cancel context.CancelFunc
}

// NewAsyncInputSource wraps src. A nil dispatch runs the surface assignment
// and callback on the background goroutine. Either way a CancelLoad that
// returns before the assignment starts prevents it.
func NewAsyncInputSource(src InputSource, dispatch Dispatcher, logger golog.Logger) *AsyncInputSource {
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	if logger == nil {
		logger = Logger
	}
	return &AsyncInputSource{
		src:      src,
		dispatch: dispatch,
		logger:   logger,
		inflight: map[Surface]*asyncLoad{},
	}
}

// Load starts resolving in the background and returns immediately. A newer
// load on the same surface supersedes an older one. The callback fires
// exactly once; it receives nil if the load was canceled, in which case the
// surface is left untouched. The surface is only read here, on the caller's
// goroutine, and written from the dispatcher.
func (as *AsyncInputSource) Load(ctx context.Context, surface Surface, cb Callback) {
	loadCtx, cancel := context.WithCancel(ctx)
	load := &asyncLoad{cancel: cancel}
	tracked := isComparable(surface)
	if tracked {
		as.mu.Lock()
		if prev, ok := as.inflight[surface]; ok {
			prev.cancel()
		}
		as.inflight[surface] = load
		as.mu.Unlock()
	} else {
		as.logger.Debugw("surface is not comparable; load cannot be canceled", "type", fmt.Sprintf("%T", surface))
	}
	staged := newStagingSurface(surface)

	var once sync.Once
	complete := func(img image.Image, replay bool) {
		once.Do(func() {
			as.dispatch(func() {
				if tracked {
					defer as.finish(surface, load)
				} else {
					defer cancel()
				}
				// cancellation and replay are atomic with respect to CancelLoad.
				as.mu.Lock()
				if err := loadCtx.Err(); err != nil {
					as.logger.Debugw("image load canceled", "error", err)
					img = nil
				} else if replay {
					staged.replay(surface, img)
				}
				as.mu.Unlock()
				if cb != nil {
					cb(img)
				}
			})
		})
	}

	utils.PanicCapturingGo(func() {
		// a panicking source still owes its caller a callback.
		defer complete(nil, false)
		var resolved image.Image
		as.src.Load(loadCtx, staged, func(img image.Image) {
			resolved = img
		})
		complete(resolved, true)
	})
}

// CancelLoad cancels the in-flight load on surface, if any.
func (as *AsyncInputSource) CancelLoad(surface Surface) {
	if !isComparable(surface) {
		return
	}
	as.mu.Lock()
	defer as.mu.Unlock()
	if load, ok := as.inflight[surface]; ok {
		load.cancel()
	}
}

func (as *AsyncInputSource) finish(surface Surface, load *asyncLoad) {
	load.cancel()
	as.mu.Lock()
	defer as.mu.Unlock()
	if as.inflight[surface] == load {
		delete(as.inflight, surface)
	}
}

// isComparable reports whether surface can be used as a map key.
func isComparable(surface Surface) bool {
	return surface != nil && reflect.TypeOf(surface).Comparable()
}
