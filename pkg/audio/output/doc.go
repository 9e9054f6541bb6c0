// ABOUTME: Audio output backend package
// ABOUTME: Provides Backend interface and malgo/oto/portaudio implementations
// Package output provides native audio playback backends.
//
// A Backend negotiates one native output stream and pulls interleaved
// float32 samples from a RenderFunc on a thread owned by the native API.
// Malgo (miniaudio) is the default; oto is available as an alternative,
// and PortAudio behind the "portaudio" build tag.
//
// Example:
//
//	backend := output.Default()
//	stream, err := backend.Open(output.Config{
//	    SampleRate:         44100,
//	    ChannelCount:       2,
//	    PeriodSizeInFrames: 4410,
//	}, render)
//	defer stream.Close()
package output
