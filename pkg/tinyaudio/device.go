// ABOUTME: Output device lifecycle: open, callback-driven fill, close
// ABOUTME: Wraps a backend stream behind idempotent close semantics
package tinyaudio

import (
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/tinyaudio/tinyaudio-go/pkg/audio/output"
)

// Callback fills buffer with interleaved float32 samples. It receives a
// buffer of exactly ChannelCount*ChannelSampleCount samples, every
// invocation, and must fill every slot before returning. Samples are
// normalized amplitudes; they are not clamped here. The callback runs on a
// thread owned by the native backend, one invocation at a time, with no
// relationship to the thread that opened the device.
type Callback func(buffer []float32)

type options struct {
	backend output.Backend
}

// Option configures OpenOutputDevice.
type Option func(*options)

// WithBackend selects the backend used to open the native stream instead
// of output.Default().
func WithBackend(b output.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// OutputDevice is an opaque handle to one live native audio output stream.
// The zero value is not usable; open devices with OpenOutputDevice.
type OutputDevice struct {
	mu     sync.Mutex
	pump   *pump
	stream output.Stream
	closed bool
}

// OpenOutputDevice opens the operating system's default audio output and
// starts invoking callback to produce samples. Construction is
// all-or-nothing: on error no native resource stays acquired. On success
// the callback begins running asynchronously until Close.
//
// Failures are distinguishable with errors.Is/errors.As:
// ErrInvalidParameters, ErrDeviceUnavailable, ErrUnsupportedConfiguration,
// or *BackendError for opaque native failures.
func OpenOutputDevice(params OutputDeviceParameters, callback Callback, opts ...Option) (*OutputDevice, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if callback == nil {
		return nil, fmt.Errorf("%w: callback must not be nil", ErrInvalidParameters)
	}

	o := options{backend: output.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	p := newPump(params, callback)

	stream, err := o.backend.Open(output.Config{
		SampleRate:         params.SampleRate,
		ChannelCount:       params.ChannelCount,
		PeriodSizeInFrames: params.ChannelSampleCount,
	}, p.render)
	if err != nil {
		return nil, classifyOpenErr(o.backend.Name(), err)
	}

	dev := &OutputDevice{pump: p, stream: stream}

	// Last-resort release path for handles dropped without Close. Close
	// remains the primary release operation.
	runtime.SetFinalizer(dev, (*OutputDevice).Close)

	log.Printf("Audio output open: %dHz, %d channels, %d samples per channel (%s)",
		params.SampleRate, params.ChannelCount, params.ChannelSampleCount, o.backend.Name())

	return dev, nil
}

// Close stops further callback invocations and releases the native stream.
// An in-flight callback invocation is allowed to complete. Close is
// idempotent: the native resource is released exactly once and later calls
// are no-ops. The handle stays valid (inert) after Close.
func (d *OutputDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true
	d.pump.stop()
	runtime.SetFinalizer(d, nil)

	err := d.stream.Close()
	if err != nil {
		return fmt.Errorf("failed to close output stream: %w", err)
	}
	return nil
}
