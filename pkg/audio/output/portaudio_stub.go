//go:build !portaudio

// ABOUTME: PortAudio stub when library not available
// ABOUTME: Provides compile-time placeholder when PortAudio not installed
package output

import (
	"fmt"
)

// PortAudio backend implementation (stub)
type PortAudio struct{}

// NewPortAudio creates a new PortAudio backend
func NewPortAudio() Backend {
	return &PortAudio{}
}

// Name identifies the backend
func (p *PortAudio) Name() string {
	return "portaudio"
}

// Open fails; PortAudio support is not compiled in
func (p *PortAudio) Open(cfg Config, render RenderFunc) (Stream, error) {
	return nil, fmt.Errorf("PortAudio support not enabled (build with -tags portaudio)")
}
