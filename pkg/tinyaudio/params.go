// ABOUTME: Output device parameter value type
// ABOUTME: Validates channel count, sample rate and period length
package tinyaudio

import "fmt"

// OutputDeviceParameters describes the stream to negotiate with the native
// backend. All fields must be positive.
type OutputDeviceParameters struct {
	// ChannelCount is the desired number of output channels. The callback
	// buffer is channel-interleaved: with two channels the layout is
	// LRLRLR..
	ChannelCount int

	// SampleRate of the audio data in Hz. Typical values: 11025, 22050,
	// 44100, 48000, 96000.
	SampleRate int

	// ChannelSampleCount is the number of samples per channel delivered
	// per callback invocation. Larger values add latency; smaller values
	// leave the callback less time to render before the previous portion
	// finishes playing.
	ChannelSampleCount int
}

// Validate reports ErrInvalidParameters if any field is non-positive.
func (p OutputDeviceParameters) Validate() error {
	if p.ChannelCount <= 0 {
		return fmt.Errorf("%w: channel count must be positive, got %d", ErrInvalidParameters, p.ChannelCount)
	}
	if p.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidParameters, p.SampleRate)
	}
	if p.ChannelSampleCount <= 0 {
		return fmt.Errorf("%w: channel sample count must be positive, got %d", ErrInvalidParameters, p.ChannelSampleCount)
	}
	return nil
}

// BufferSize returns the callback buffer length in samples:
// ChannelCount * ChannelSampleCount.
func (p OutputDeviceParameters) BufferSize() int {
	return p.ChannelCount * p.ChannelSampleCount
}
