// ABOUTME: Error taxonomy for device construction
// ABOUTME: Sentinel errors plus opaque native backend failure wrapper
package tinyaudio

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameters reports a zero or negative channel count, sample
	// rate or channel sample count. Detected before any native resource is
	// touched.
	ErrInvalidParameters = errors.New("invalid output device parameters")

	// ErrDeviceUnavailable reports that no usable output device exists or
	// the OS denied access at this moment (e.g. a mobile app without
	// focus). Retryable once the precondition is satisfied.
	ErrDeviceUnavailable = errors.New("output device unavailable")

	// ErrUnsupportedConfiguration reports that the backend cannot satisfy
	// the requested channel/rate combination. Not retryable with the same
	// parameters.
	ErrUnsupportedConfiguration = errors.New("unsupported output configuration")
)

// BackendError wraps an opaque failure surfaced by a native backend. It is
// propagated, not interpreted; use errors.As to detect it.
type BackendError struct {
	Backend string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("audio backend %s: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// classifyOpenErr keeps already-classified failures intact and wraps
// everything else as an opaque backend error.
func classifyOpenErr(backend string, err error) error {
	if errors.Is(err, ErrInvalidParameters) ||
		errors.Is(err, ErrDeviceUnavailable) ||
		errors.Is(err, ErrUnsupportedConfiguration) {
		return err
	}
	return &BackendError{Backend: backend, Err: err}
}
