// ABOUTME: Test double backend tests
// ABOUTME: Verifies the Double's counters and scripted failure behavior
package outputtest

import (
	"errors"
	"testing"

	"github.com/tinyaudio/tinyaudio-go/pkg/audio/output"
)

func TestDoubleImplementsBackend(t *testing.T) {
	var _ output.Backend = (*Double)(nil)
}

func TestDoubleCountsAcquireAndRelease(t *testing.T) {
	d := New()

	stream, err := d.Open(output.Config{SampleRate: 44100, ChannelCount: 2, PeriodSizeInFrames: 64}, func(out []float32) {
		for i := range out {
			out[i] = 0.5
		}
	})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if d.Opens() != 1 {
		t.Errorf("Opens() = %d, want 1", d.Opens())
	}

	out := d.Pull(8)
	if len(out) != 16 {
		t.Errorf("Pull(8) returned %d samples, want 16", len(out))
	}
	for i, s := range out {
		if s != 0.5 {
			t.Fatalf("sample %d = %v, want 0.5", i, s)
		}
	}

	if err := stream.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if d.Releases() != 1 {
		t.Errorf("Releases() = %d, want 1", d.Releases())
	}

	// A second raw close is the defect the counter exists to catch.
	if err := stream.Close(); err == nil {
		t.Error("second raw stream close should report double release")
	}
	if d.Releases() != 2 {
		t.Errorf("Releases() = %d after double close, want 2", d.Releases())
	}
}

func TestDoubleScriptedOpenFailure(t *testing.T) {
	d := New()
	d.OpenErr = errors.New("no device present")

	if _, err := d.Open(output.Config{}, func([]float32) {}); err == nil {
		t.Fatal("Open should fail when OpenErr is set")
	}
	if d.Opens() != 0 {
		t.Errorf("Opens() = %d after failed open, want 0", d.Opens())
	}
}
