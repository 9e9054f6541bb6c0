// ABOUTME: Audio sample type definitions and conversions
// ABOUTME: Float32 interleaved samples and integer PCM helpers
package audio

import (
	"encoding/binary"
	"math"
)

// Samples are normalized float32 amplitudes in [-1.0, 1.0], channel-interleaved:
// frame 0 channel 0, frame 0 channel 1, ..., frame 1 channel 0, and so on.
// The core does not clamp; conversion to integer PCM clamps at the boundary.

// FloatToInt16 converts a normalized float32 sample to 16-bit PCM,
// clamping out-of-range input to the int16 range.
func FloatToInt16(sample float32) int16 {
	scaled := sample * float32(math.MaxInt16)
	if scaled > math.MaxInt16 {
		return math.MaxInt16
	}
	if scaled < math.MinInt16 {
		return math.MinInt16
	}
	return int16(scaled)
}

// Int16ToFloat converts a 16-bit PCM sample to a normalized float32.
func Int16ToFloat(sample int16) float32 {
	return float32(sample) / float32(math.MaxInt16)
}

// WriteFloat32LE serializes samples as little-endian float32 into dst.
// dst must hold at least 4*len(src) bytes.
func WriteFloat32LE(dst []byte, src []float32) {
	for i, s := range src {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(s))
	}
}

// WriteInt16LE converts samples to 16-bit PCM and serializes them
// little-endian into dst. dst must hold at least 2*len(src) bytes.
func WriteInt16LE(dst []byte, src []float32) {
	for i, s := range src {
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(FloatToInt16(s)))
	}
}

// ReadFloat32LE deserializes little-endian float32 samples from src into dst.
// src must hold at least 4*len(dst) bytes.
func ReadFloat32LE(dst []float32, src []byte) {
	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:]))
	}
}
