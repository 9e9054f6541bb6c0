// ABOUTME: Parameter validation tests
// ABOUTME: Verifies Validate and BufferSize on OutputDeviceParameters
package tinyaudio

import (
	"errors"
	"testing"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  OutputDeviceParameters
		wantErr bool
	}{
		{"valid stereo", OutputDeviceParameters{2, 44100, 4410}, false},
		{"valid mono minimal", OutputDeviceParameters{1, 1, 1}, false},
		{"zero channels", OutputDeviceParameters{0, 44100, 4410}, true},
		{"zero rate", OutputDeviceParameters{2, 0, 4410}, true},
		{"zero samples", OutputDeviceParameters{2, 44100, 0}, true},
		{"all zero", OutputDeviceParameters{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidParameters) {
					t.Errorf("got %v, want ErrInvalidParameters", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate failed for valid parameters: %v", err)
			}
		})
	}
}

func TestParamsBufferSize(t *testing.T) {
	p := OutputDeviceParameters{ChannelCount: 2, SampleRate: 44100, ChannelSampleCount: 4410}
	if got := p.BufferSize(); got != 8820 {
		t.Errorf("BufferSize() = %d, want 8820", got)
	}
}
