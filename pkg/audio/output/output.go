// ABOUTME: Audio output backend interface definition
// ABOUTME: Common interface for native playback backends
package output

import "fmt"

// Config describes the stream a backend should negotiate with the native API.
type Config struct {
	// SampleRate in Hz.
	SampleRate int

	// ChannelCount is the number of interleaved output channels.
	ChannelCount int

	// PeriodSizeInFrames is the frame count the backend should aim to pull
	// per render call. Backends are free to pull other sizes; the caller
	// handles slicing.
	PeriodSizeInFrames int
}

// RenderFunc fills out with interleaved float32 samples. It always fills
// every slot of out before returning and is safe to call from a backend's
// delivery thread, one invocation at a time.
type RenderFunc func(out []float32)

// Stream represents one live native output stream.
type Stream interface {
	// Close stops playback and releases the native resource.
	Close() error
}

// Backend opens native audio output streams.
type Backend interface {
	// Name identifies the backend (e.g. "malgo", "oto", "portaudio").
	Name() string

	// Open negotiates a native stream for cfg and starts pulling samples
	// from render. It either returns a live stream or fails; no partially
	// opened stream is ever returned.
	Open(cfg Config, render RenderFunc) (Stream, error)
}

// Default returns the backend used when the caller does not pick one.
// Malgo wraps miniaudio, which covers ALSA/PulseAudio, WASAPI/DirectSound,
// CoreAudio and AAudio.
func Default() Backend {
	return NewMalgo()
}

// Lookup resolves a backend by name. An empty name selects the default.
func Lookup(name string) (Backend, error) {
	switch name {
	case "", "malgo":
		return NewMalgo(), nil
	case "oto":
		return NewOto(), nil
	case "portaudio":
		return NewPortAudio(), nil
	default:
		return nil, fmt.Errorf("unknown audio backend %q (available: malgo, oto, portaudio)", name)
	}
}
