// ABOUTME: Test double audio backend
// ABOUTME: Scripted backend counting acquire/release and driving pulls manually
package outputtest

import (
	"fmt"
	"sync"

	"github.com/tinyaudio/tinyaudio-go/pkg/audio/output"
)

// Double is a Backend test double. It acquires no native resources; tests
// script its open behavior and drive the render path by calling Pull.
type Double struct {
	// OpenErr, when set, is returned by Open before anything is recorded
	// as acquired.
	OpenErr error

	mu       sync.Mutex
	opens    int
	releases int
	cfg      output.Config
	render   output.RenderFunc
}

// New creates a Double.
func New() *Double {
	return &Double{}
}

// Name identifies the backend
func (d *Double) Name() string {
	return "test"
}

// Open records the acquisition and captures the render function
func (d *Double) Open(cfg output.Config, render output.RenderFunc) (output.Stream, error) {
	if d.OpenErr != nil {
		return nil, d.OpenErr
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.opens++
	d.cfg = cfg
	d.render = render
	return &doubleStream{d: d}, nil
}

// Pull invokes the captured render function for frameCount frames and
// returns the rendered interleaved samples, emulating one backend callback.
func (d *Double) Pull(frameCount int) []float32 {
	d.mu.Lock()
	render := d.render
	channels := d.cfg.ChannelCount
	d.mu.Unlock()

	if render == nil {
		panic("outputtest: Pull before Open")
	}

	out := make([]float32, frameCount*channels)
	render(out)
	return out
}

// Opens returns how many times Open succeeded.
func (d *Double) Opens() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opens
}

// Releases returns how many times a stream's Close was called. The device
// contract requires this to end at exactly one per successful open.
func (d *Double) Releases() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.releases
}

// Config returns the stream configuration captured at Open.
func (d *Double) Config() output.Config {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cfg
}

type doubleStream struct {
	d *Double
}

func (s *doubleStream) Close() error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	s.d.releases++
	if s.d.releases > 1 {
		return fmt.Errorf("native stream released %d times", s.d.releases)
	}
	return nil
}
