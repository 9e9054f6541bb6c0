// ABOUTME: Fixed-size buffer pump between user callback and backend pulls
// ABOUTME: Slices arbitrary pull sizes out of exact callback-sized periods
package tinyaudio

import (
	"sync"
	"sync/atomic"
)

// pump owns the fixed-buffer guarantee: the user callback always sees a
// buffer of exactly BufferSize() samples, while backends may pull any
// number of samples per render call. Leftover samples carry over to the
// next pull.
type pump struct {
	callback Callback

	mu  sync.Mutex
	buf []float32
	pos int // next unread index; == len(buf) means exhausted

	stopped atomic.Bool
}

func newPump(params OutputDeviceParameters, callback Callback) *pump {
	buf := make([]float32, params.BufferSize())
	return &pump{
		callback: callback,
		buf:      buf,
		pos:      len(buf),
	}
}

// render fills out with samples drawn from the user callback. Backends
// serialize their pulls; the mutex guards against test drivers that don't.
// After stop, pulls are zero-filled and the callback is never re-entered.
func (p *pump) render(out []float32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(out) > 0 {
		if p.stopped.Load() {
			for i := range out {
				out[i] = 0
			}
			return
		}
		if p.pos == len(p.buf) {
			p.callback(p.buf)
			p.pos = 0
		}
		n := copy(out, p.buf[p.pos:])
		p.pos += n
		out = out[n:]
	}
}

// stop prevents any new callback invocation. A callback already executing
// completes; the rest of that pull and all later pulls get silence.
func (p *pump) stop() {
	p.stopped.Store(true)
}
