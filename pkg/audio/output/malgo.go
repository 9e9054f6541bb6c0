// ABOUTME: Malgo-based audio output backend
// ABOUTME: Uses miniaudio via malgo for cross-platform float32 playback
package output

import (
	"fmt"
	"log"

	"github.com/gen2brain/malgo"

	"github.com/tinyaudio/tinyaudio-go/pkg/audio"
)

// Malgo backend implementation using the malgo/miniaudio library
type Malgo struct{}

// NewMalgo creates a new Malgo backend
func NewMalgo() Backend {
	return &Malgo{}
}

// Name identifies the backend
func (m *Malgo) Name() string {
	return "malgo"
}

// Open negotiates a playback device and starts pulling samples from render
func (m *Malgo) Open(cfg Config, render RenderFunc) (Stream, error) {
	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize malgo context: %w", err)
	}

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Playback)
	deviceConfig.Playback.Format = malgo.FormatF32
	deviceConfig.Playback.Channels = uint32(cfg.ChannelCount)
	deviceConfig.SampleRate = uint32(cfg.SampleRate)
	deviceConfig.PeriodSizeInFrames = uint32(cfg.PeriodSizeInFrames)
	deviceConfig.Periods = 2
	deviceConfig.Alsa.NoMMap = 1

	// Scratch buffer reused across callbacks; miniaudio serializes them.
	var scratch []float32
	onSamples := func(pOutput, pInput []byte, frameCount uint32) {
		n := int(frameCount) * cfg.ChannelCount
		if cap(scratch) < n {
			scratch = make([]float32, n)
		}
		s := scratch[:n]
		render(s)
		audio.WriteFloat32LE(pOutput, s)
	}

	device, err := malgo.InitDevice(mctx.Context, deviceConfig, malgo.DeviceCallbacks{
		Data: onSamples,
	})
	if err != nil {
		uninitContext(mctx)
		return nil, fmt.Errorf("failed to initialize playback device: %w", err)
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		uninitContext(mctx)
		return nil, fmt.Errorf("failed to start playback device: %w", err)
	}

	return &malgoStream{mctx: mctx, device: device}, nil
}

type malgoStream struct {
	mctx   *malgo.AllocatedContext
	device *malgo.Device
}

// Close stops playback and releases the device and context
func (s *malgoStream) Close() error {
	if s.device != nil {
		if err := s.device.Stop(); err != nil {
			log.Printf("Warning: device stop error: %v", err)
		}
		s.device.Uninit()
		s.device = nil
	}
	if s.mctx != nil {
		uninitContext(s.mctx)
		s.mctx = nil
	}
	return nil
}

func uninitContext(mctx *malgo.AllocatedContext) {
	if err := mctx.Uninit(); err != nil {
		log.Printf("Warning: malgo context uninit error: %v", err)
	}
	mctx.Free()
}
