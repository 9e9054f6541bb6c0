// ABOUTME: Audio sample types package
// ABOUTME: Shared sample format conversions for backends and callers
// Package audio defines the sample conventions shared by the library:
// normalized float32 amplitudes in channel-interleaved order, plus the
// conversions backends use to reach integer PCM wire formats.
package audio
