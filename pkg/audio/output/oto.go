// ABOUTME: Oto-based audio output backend
// ABOUTME: Feeds a pull reader into an oto player as 16-bit PCM
package output

import (
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/tinyaudio/tinyaudio-go/pkg/audio"
)

// Oto backend implementation using the oto library.
//
// Oto allows only one context per process; opening a second stream through
// this backend fails with the library's own error.
type Oto struct{}

// NewOto creates a new Oto backend
func NewOto() Backend {
	return &Oto{}
}

// Name identifies the backend
func (o *Oto) Name() string {
	return "oto"
}

// Open creates an oto context and a player fed by render
func (o *Oto) Open(cfg Config, render RenderFunc) (Stream, error) {
	op := &oto.NewContextOptions{
		SampleRate:   cfg.SampleRate,
		ChannelCount: cfg.ChannelCount,
		Format:       oto.FormatSignedInt16LE,
		// Two periods in flight, matching the other backends.
		BufferSize: 2 * time.Second * time.Duration(cfg.PeriodSizeInFrames) / time.Duration(cfg.SampleRate),
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	reader := &renderReader{
		render:   render,
		channels: cfg.ChannelCount,
		frames:   cfg.PeriodSizeInFrames,
	}

	player := ctx.NewPlayer(reader)
	player.Play()

	return &otoStream{ctx: ctx, player: player}, nil
}

type otoStream struct {
	ctx    *oto.Context
	player *oto.Player
}

// Close stops the player and suspends the context (oto has no context close)
func (s *otoStream) Close() error {
	if s.player != nil {
		if err := s.player.Close(); err != nil {
			return fmt.Errorf("failed to close oto player: %w", err)
		}
		s.player = nil
	}
	if s.ctx != nil {
		if err := s.ctx.Suspend(); err != nil {
			return fmt.Errorf("failed to suspend oto context: %w", err)
		}
		s.ctx = nil
	}
	return nil
}

// renderReader pulls one period of float32 samples at a time and serves it
// to oto as 16-bit little-endian PCM. It never reports EOF; closing the
// player stops reads.
type renderReader struct {
	render   RenderFunc
	channels int
	frames   int

	scratch []float32
	pending []byte
	pos     int
}

func (r *renderReader) Read(p []byte) (int, error) {
	if r.pos == len(r.pending) {
		n := r.frames * r.channels
		if cap(r.scratch) < n {
			r.scratch = make([]float32, n)
		}
		s := r.scratch[:n]
		r.render(s)

		if cap(r.pending) < n*2 {
			r.pending = make([]byte, n*2)
		}
		r.pending = r.pending[:n*2]
		audio.WriteInt16LE(r.pending, s)
		r.pos = 0
	}

	n := copy(p, r.pending[r.pos:])
	r.pos += n
	return n, nil
}
