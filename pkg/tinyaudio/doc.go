// ABOUTME: High-level tinyaudio library API
// ABOUTME: Opens the default output device and drives a sample callback
// Package tinyaudio is a minimal cross-platform shim for sending
// floating-point samples to the default audio output device.
//
// Open a device with fixed parameters and a callback; the native backend
// invokes the callback periodically with a buffer of exactly
// ChannelCount*ChannelSampleCount interleaved float32 samples until the
// device is closed. There is no decoding, mixing, DSP, device enumeration
// or capture here; backends live in pkg/audio/output.
//
// Example, playing a 440 Hz sine wave:
//
//	params := tinyaudio.OutputDeviceParameters{
//	    ChannelCount:       2,
//	    SampleRate:         44100,
//	    ChannelSampleCount: 4410,
//	}
//
//	var clock float64
//	device, err := tinyaudio.OpenOutputDevice(params, func(buffer []float32) {
//	    for i := 0; i < len(buffer); i += params.ChannelCount {
//	        clock += 1.0 / float64(params.SampleRate)
//	        value := float32(math.Sin(2 * math.Pi * 440 * clock))
//	        for ch := 0; ch < params.ChannelCount; ch++ {
//	            buffer[i+ch] = value
//	        }
//	    }
//	})
//	defer device.Close()
//
// Callers generating samples from shared state must synchronize it
// themselves; the library guarantees only one callback invocation at a
// time per device.
//
// On mobile hosts open the device only while the application holds UI
// focus; in browsers only after a user gesture. Violations surface as
// ErrDeviceUnavailable or a native backend error.
package tinyaudio
